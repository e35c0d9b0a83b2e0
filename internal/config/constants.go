package config

// Canvas geometry constants. All widget geometry is expressed in logical
// pixels on a fixed design surface and snapped to the grid after every
// user-driven mutation.
const (
	GridSnap          = 10
	RotationSnap      = 15
	CanvasWidth       = 800
	CanvasHeight      = 600
	CanvasPadding     = 20
	MinWidgetWidth    = 50
	MinWidgetHeight   = 30
	CollisionBuffer   = 10
	NewWidgetOriginX  = 20
	NewWidgetOriginY  = 20
	NewWidgetRowPitch = 60
)

// Timeline window constants. The strip covers a fixed range of calendar
// days generated once per session.
const (
	TimelineDays       = 31
	TimelineLookbehind = 15
	MaxCellWidth       = 600
	CellWidthRatio     = 0.7
)

// Terminal mapping: one column is 10 logical px, one row is 20 logical px,
// so a horizontal grid step is exactly one column.
const (
	PxPerColumn = 10
	PxPerRow    = 20
)

// Note lifecycle.
const (
	NoteStatusPending   = "pending"
	NoteStatusCompleted = "completed"
	NoteStatusOverdue   = "overdue"
)

// Note priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Database/application settings.
const (
	AppName    = "workbench"
	DBFileName = "workbench.db"
)
