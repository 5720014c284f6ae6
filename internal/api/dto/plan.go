package dto

type PlanRequest struct {
	Order []int `json:"order"`
}

type PlanResponse struct {
	TotalLength int    `json:"total_length"`
	ActionPlan  string `json:"action_plan"`
}

type DistancesResponse struct {
	Distances      [][]int `json:"distances"`
	StartDistances []int   `json:"start_distances"`
	EndDistances   []int   `json:"end_distances"`
}
