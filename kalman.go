package tracklite

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// PointState represents a 1x4 state vector (x, y, vx, vy) using a slice
// of float32
type PointState []float32

// PointStateCov represents a 4x4 covariance matrix
type PointStateCov struct {
	*mat.Dense
}

// PointKalmanFilter is a constant velocity Kalman filter over a 2D center
// point.  The process and measurement noise are scaled by the bounding box
// height of the tracked object so larger objects tolerate larger motion.
type PointKalmanFilter struct {
	stdWeightPosition float32
	stdWeightVelocity float32
	motionMat         *mat.Dense
	updateMat         *mat.Dense
}

// NewPointKalmanFilter initializes and returns a new PointKalmanFilter
func NewPointKalmanFilter(stdWeightPosition, stdWeightVelocity float32) *PointKalmanFilter {

	ndim := 2
	dt := float32(1.0)

	// create identity matrix for motionMat with dt on the velocity terms
	motionMat := mat.NewDense(4, 4, nil)

	for i := 0; i < 4; i++ {
		motionMat.Set(i, i, float64(1.0))
	}

	for i := 0; i < ndim; i++ {
		motionMat.Set(i, ndim+i, float64(dt))
	}

	// create updateMat as a 2x4 matrix with first 2 diagonal elements set to 1
	updateMat := mat.NewDense(2, 4, nil)

	for i := 0; i < 2; i++ {
		updateMat.Set(i, i, float64(1.0))
	}

	return &PointKalmanFilter{
		stdWeightPosition: stdWeightPosition,
		stdWeightVelocity: stdWeightVelocity,
		motionMat:         motionMat,
		updateMat:         updateMat,
	}
}

// Initiate initializes the state mean and covariance from the first
// measured center point.  scale is the bounding box height used to weight
// the noise terms.
func (kf *PointKalmanFilter) Initiate(mean PointState, covariance *PointStateCov,
	measurement Point, scale float32) {

	mean[0] = measurement.X
	mean[1] = measurement.Y
	mean[2] = 0.0
	mean[3] = 0.0

	// initialize the standard deviation array for the state variables
	std := make(PointState, 4)
	std[0] = 2 * kf.stdWeightPosition * scale  // x position
	std[1] = 2 * kf.stdWeightPosition * scale  // y position
	std[2] = 10 * kf.stdWeightVelocity * scale // x velocity
	std[3] = 10 * kf.stdWeightVelocity * scale // y velocity

	// set the diagonal elements of the covariance matrix to the variances
	for i, v := range std {
		covariance.Set(i, i, float64(v*v))
	}
}

// Predict predicts the next state mean and covariance
func (kf *PointKalmanFilter) Predict(mean PointState, covariance *PointStateCov,
	scale float32) {

	// initialize the standard deviation array for the state variables
	std := make(PointState, 4)
	std[0] = kf.stdWeightPosition * scale // x position
	std[1] = kf.stdWeightPosition * scale // y position
	std[2] = kf.stdWeightVelocity * scale // x velocity
	std[3] = kf.stdWeightVelocity * scale // y velocity

	// create the motion covariance matrix with variances on the diagonal
	motionCov := mat.NewDense(4, 4, nil)

	for i, v := range std {
		motionCov.Set(i, i, float64(v*v))
	}

	// convert the mean state vector to a matrix for multiplication
	meanMat := mat.NewDense(4, 1, nil)

	for i := 0; i < 4; i++ {
		meanMat.Set(i, 0, float64(mean[i]))
	}

	// predict the next state mean using the motion model
	meanMat.Mul(kf.motionMat, meanMat)

	for i := 0; i < 4; i++ {
		mean[i] = float32(meanMat.At(i, 0))
	}

	// predict the next state covariance using the motion model
	cov := covariance.Dense
	cov.Mul(kf.motionMat, cov)
	cov.Mul(cov, kf.motionMat.T())
	cov.Add(cov, motionCov)
}

// Update updates the state mean and covariance with a measured center point
func (kf *PointKalmanFilter) Update(mean PointState, covariance *PointStateCov,
	measurement Point, scale float32) error {

	// project the state mean and covariance to measurement space
	projectedMean, projectedCov := kf.project(mean, covariance, scale)

	// perform Cholesky factorization of the projected covariance matrix
	chol := mat.Cholesky{}

	if ok := chol.Factorize(projectedCov); !ok {
		return errors.New("failed to factorize projected covariance")
	}

	// compute the matrix B for Kalman gain calculation
	B := mat.NewDense(4, 2, nil)
	B.Mul(covariance.Dense, kf.updateMat.T())

	// compute the Kalman gain using the Cholesky factorization
	var kalmanGain mat.Dense
	err := chol.SolveTo(&kalmanGain, B.T())

	if err != nil {
		return errors.Wrap(err, "failed to compute kalman gain")
	}

	// compute the innovation (measurement residual)
	innovation := mat.NewVecDense(2, []float64{
		float64(measurement.X - projectedMean[0]),
		float64(measurement.Y - projectedMean[1]),
	})

	// update the state mean with the innovation
	tmp := mat.NewVecDense(4, nil)
	tmp.MulVec(kalmanGain.T(), innovation)

	for i := 0; i < 4; i++ {
		mean[i] += float32(tmp.AtVec(i))
	}

	// update the state covariance
	temp := mat.NewDense(4, 2, nil)
	temp.Mul(kalmanGain.T(), projectedCov)

	temp2 := mat.NewDense(4, 4, nil)
	temp2.Mul(temp, &kalmanGain)

	newCov := mat.NewDense(4, 4, nil)
	newCov.Sub(covariance.Dense, temp2)

	covariance.Dense = newCov

	return nil
}

// project projects the state mean and covariance to measurement space
func (kf *PointKalmanFilter) project(mean PointState, covariance *PointStateCov,
	scale float32) ([]float32, *mat.SymDense) {

	// create the innovation covariance matrix (measurement noise covariance)
	std := kf.stdWeightPosition * scale
	innovationCov := mat.NewSymDense(2, nil)

	for i := 0; i < 2; i++ {
		innovationCov.SetSym(i, i, float64(std*std))
	}

	// project the state mean to measurement space
	meanVec := mat.NewVecDense(4, nil)

	for i := 0; i < 4; i++ {
		meanVec.SetVec(i, float64(mean[i]))
	}

	projectedMeanVec := mat.NewVecDense(2, nil)
	projectedMeanVec.MulVec(kf.updateMat, meanVec)

	// project the state covariance to measurement space
	temp := mat.NewDense(2, 4, nil)
	temp.Mul(kf.updateMat, covariance.Dense)

	temp2 := mat.NewDense(2, 2, nil)
	temp2.Mul(temp, kf.updateMat.T())

	projectedCov := mat.NewSymDense(2, nil)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			projectedCov.SetSym(i, j, temp2.At(i, j))
		}
	}

	// add the innovation covariance to the projected covariance
	projectedCov.AddSym(projectedCov, innovationCov)

	projectedMean := []float32{
		float32(projectedMeanVec.AtVec(0)),
		float32(projectedMeanVec.AtVec(1)),
	}

	return projectedMean, projectedCov
}
