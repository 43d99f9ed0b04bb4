package config

const (
	WindowWidth  = 420
	WindowHeight = 580

	// Diagram canvas
	CanvasWidth  = 400
	CanvasHeight = 400
	Padding      = 40
	// Drawable span for the longer leg
	MaxDim = CanvasWidth - 2*Padding

	StrokeWidth     = 2
	RightAngleSize  = 14
	HypLabelOffset  = 10
	SideLabelOffset = 16

	// Diagram position inside the window
	DiagramX = 10
	DiagramY = 124

	// Input fields
	FieldAX     = 20
	FieldBX     = 220
	FieldY      = 48
	FieldWidth  = 180
	FieldHeight = 30

	// Result panel
	ResultX      = 20
	ResultY      = 92
	ResultWidth  = 380
	ResultHeight = 26

	// Save button
	ButtonX      = 20
	ButtonY      = 536
	ButtonWidth  = 120
	ButtonHeight = 28
)
