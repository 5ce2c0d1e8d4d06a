// Package landmarks maps raw face-mesh detections onto the named anatomical
// points the metrics work with, and holds those points for a session.
package landmarks

// Base point names. Left and right refer to the subject, which is the mirror
// of the camera-facing image.
const (
	LeftIris            = "leftIris"
	RightIris           = "rightIris"
	LeftLateralCanthus  = "leftLateralCanthus"
	LeftMedialCanthus   = "leftMedialCanthus"
	RightLateralCanthus = "rightLateralCanthus"
	RightMedialCanthus  = "rightMedialCanthus"
	LeftEyeUpper        = "leftEyeUpper"
	LeftEyeLower        = "leftEyeLower"
	RightEyeUpper       = "rightEyeUpper"
	RightEyeLower       = "rightEyeLower"
	LeftEyebrow         = "leftEyebrow"
	RightEyebrow        = "rightEyebrow"
	LeftZygo            = "leftZygo"
	RightZygo           = "rightZygo"
	NoseBottom          = "noseBottom"
	LeftNoseCorner      = "leftNoseCorner"
	RightNoseCorner     = "rightNoseCorner"
	LeftCupidBow        = "leftCupidBow"
	LipSeparation       = "lipSeparation"
	RightCupidBow       = "rightCupidBow"
	LeftLipCorner       = "leftLipCorner"
	RightLipCorner      = "rightLipCorner"
	LowerLip            = "lowerLip"
	UpperLip            = "upperLip"
	LeftGonial          = "leftGonial"
	RightGonial         = "rightGonial"
	ChinLeft            = "chinLeft"
	ChinTip             = "chinTip"
	ChinRight           = "chinRight"
)

// Annotation sequence names produced by the face-mesh model.
const (
	SeqRightEyeIris      = "rightEyeIris"
	SeqLeftEyeIris       = "leftEyeIris"
	SeqRightEyeUpper0    = "rightEyeUpper0"
	SeqRightEyeLower0    = "rightEyeLower0"
	SeqRightEyeLower1    = "rightEyeLower1"
	SeqLeftEyeUpper0     = "leftEyeUpper0"
	SeqLeftEyeLower0     = "leftEyeLower0"
	SeqLeftEyeLower1     = "leftEyeLower1"
	SeqRightEyebrowUpper = "rightEyebrowUpper"
	SeqLeftEyebrowUpper  = "leftEyebrowUpper"
	SeqSilhouette        = "silhouette"
	SeqNoseBottom        = "noseBottom"
	SeqNoseRightCorner   = "noseRightCorner"
	SeqNoseLeftCorner    = "noseLeftCorner"
	SeqLipsUpperOuter    = "lipsUpperOuter"
	SeqLipsUpperInner    = "lipsUpperInner"
	SeqLipsLowerOuter    = "lipsLowerOuter"
)

// Selector selects one point of one annotation sequence.
type Selector struct {
	Sequence string
	Index    int
}

// Mapping is the fixed table from point name to annotation source.
// Changing any entry moves the point every metric is built on.
var Mapping = []struct {
	Name   string
	Source Selector
}{
	{LeftIris, Selector{SeqRightEyeIris, 0}},
	{RightIris, Selector{SeqLeftEyeIris, 0}},
	{LeftLateralCanthus, Selector{SeqRightEyeLower1, 0}},
	{LeftMedialCanthus, Selector{SeqRightEyeLower1, 7}},
	{RightLateralCanthus, Selector{SeqLeftEyeLower1, 0}},
	{RightMedialCanthus, Selector{SeqLeftEyeLower1, 7}},
	{LeftEyeUpper, Selector{SeqRightEyeUpper0, 4}},
	{LeftEyeLower, Selector{SeqRightEyeLower0, 4}},
	{RightEyeUpper, Selector{SeqLeftEyeUpper0, 4}},
	{RightEyeLower, Selector{SeqLeftEyeLower0, 4}},
	{LeftEyebrow, Selector{SeqRightEyebrowUpper, 6}},
	{RightEyebrow, Selector{SeqLeftEyebrowUpper, 6}},
	{LeftZygo, Selector{SeqSilhouette, 28}},
	{RightZygo, Selector{SeqSilhouette, 8}},
	{NoseBottom, Selector{SeqNoseBottom, 0}},
	{LeftNoseCorner, Selector{SeqNoseRightCorner, 0}},
	{RightNoseCorner, Selector{SeqNoseLeftCorner, 0}},
	{LeftCupidBow, Selector{SeqLipsUpperOuter, 4}},
	{LipSeparation, Selector{SeqLipsUpperInner, 5}},
	{RightCupidBow, Selector{SeqLipsUpperOuter, 6}},
	{LeftLipCorner, Selector{SeqLipsUpperOuter, 0}},
	{RightLipCorner, Selector{SeqLipsUpperOuter, 10}},
	{LowerLip, Selector{SeqLipsLowerOuter, 4}},
	{UpperLip, Selector{SeqLipsUpperOuter, 5}},
	{LeftGonial, Selector{SeqSilhouette, 24}},
	{RightGonial, Selector{SeqSilhouette, 12}},
	{ChinLeft, Selector{SeqSilhouette, 19}},
	{ChinTip, Selector{SeqSilhouette, 18}},
	{ChinRight, Selector{SeqSilhouette, 17}},
}
