package request

type CourseRequest struct {
	Title        string  `json:"title" validate:"required,notblank,max=200"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	InstructorID string  `json:"instructor_id" validate:"required,uuid"`
}

// CourseUpdateRequest carries a partial update: nil fields keep their value.
type CourseUpdateRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,notblank,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=5000"`
}

func (r CourseUpdateRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil
}
