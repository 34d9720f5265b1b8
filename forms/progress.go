package forms

// @Desc pointer so an explicit 0 passes required
type ProgressForm struct {
	ProgressPercentage *int `json:"progressPercentage" binding:"required,min=0,max=100" validate:"required" minimum:"0" maximum:"100" example:"40"`
}
