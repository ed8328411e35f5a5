/*
go-tracklite provides lightweight result holder types for visual object
tracking built on top of GoCV.  A tracking routine produces one result per
processed frame; this package carries the bounding box geometry, velocity
estimates, and algorithm specific payloads of those results, and the render
subpackage draws them back onto the source frame.

No tracking algorithm is implemented here.  CAMShift, Lucas-Kanade optical
flow, SURF keypoint matching and median flow all run in OpenCV via GoCV;
their per-frame outputs are wrapped in Track, CAMShiftTrack, LKTrack,
SURFTrack and MFTrack values.  The TrackSet type chains results across
frames, filling in the velocity and prediction/correction fields from the
per-object history.
*/
package tracklite
