package pose

/* skeleton keypoints (COCO single-pose order)
0: Nose
1: Left Eye
2: Right Eye
3: Left Ear
4: Right Ear
5: Left Shoulder
6: Right Shoulder
7: Left Elbow
8: Right Elbow
9: Left Wrist
10: Right Wrist
11: Left Hip
12: Right Hip
13: Left Knee
14: Right Knee
15: Left Ankle
16: Right Ankle
*/

// Keypoint indices into Skeleton.Landmarks.
const (
	Nose = iota
	LeftEye
	RightEye
	LeftEar
	RightEar
	LeftShoulder
	RightShoulder
	LeftElbow
	RightElbow
	LeftWrist
	RightWrist
	LeftHip
	RightHip
	LeftKnee
	RightKnee
	LeftAnkle
	RightAnkle

	// NumLandmarks is the fixed size of a skeleton.
	NumLandmarks = 17
)

// Landmark is one body keypoint in normalized image coordinates.
// X and Y are nominally 0-1 but the model may place occluded points
// slightly outside the frame; consumers clamp as needed.
type Landmark struct {
	X, Y  float64
	Score float64 // Detection confidence (0-1)
}

// Skeleton is the fixed-size ordered landmark list for one person.
type Skeleton struct {
	Landmarks [NumLandmarks]Landmark
}

// Visible counts landmarks with a score at or above threshold.
func (s *Skeleton) Visible(threshold float64) int {
	n := 0
	for _, lm := range s.Landmarks {
		if lm.Score >= threshold {
			n++
		}
	}
	return n
}
