package forms

// @Desc image file comes in the multipart field "image"
type CourseForm struct {
	Title       string `form:"title" binding:"required,min=3,max=100" validate:"required" minimum:"3" maximum:"100" example:"Web Development Bootcamp"`
	Description string `form:"description" binding:"required,min=3,max=1000" validate:"required" minimum:"3" maximum:"1000" example:"HTML, CSS and JS from scratch"`
}

// @Desc absent fields keep their stored value, image replacement optional
type CourseUpdateForm struct {
	Title       string `form:"title" binding:"omitempty,min=3,max=100" minimum:"3" maximum:"100" example:"Web Development Bootcamp"`
	Description string `form:"description" binding:"omitempty,min=3,max=1000" minimum:"3" maximum:"1000" example:"HTML, CSS and JS from scratch"`
}
