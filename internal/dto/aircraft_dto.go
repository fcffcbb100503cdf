package dto

type CreateAircraftRequest struct {
	TailNumber   string  `json:"tail_number" validate:"required,max=20"`
	Model        string  `json:"model" validate:"max=100"`
	BaseLocation string  `json:"base_location" validate:"max=100"`
	HobbsTime    float64 `json:"hobbs_time" validate:"gte=0"`
	TachTime     float64 `json:"tach_time" validate:"gte=0"`
}

type UpdateAircraftRequest struct {
	Model        *string  `json:"model,omitempty" validate:"omitempty,max=100"`
	BaseLocation *string  `json:"base_location,omitempty" validate:"omitempty,max=100"`
	Status       *string  `json:"status,omitempty" validate:"omitempty,max=50"`
	HobbsTime    *float64 `json:"hobbs_time,omitempty" validate:"omitempty,gte=0"`
	TachTime     *float64 `json:"tach_time,omitempty" validate:"omitempty,gte=0"`
}

// ReadinessResponse is the derived status of one aircraft, recomputed from
// its open tasks on every read.
type ReadinessResponse struct {
	AircraftID string   `json:"aircraft_id"`
	Readiness  string   `json:"readiness"`
	OpenTasks  []string `json:"open_tasks"`
}
