package dto

type StopResponse struct {
	Index int `json:"index"`
	X     int `json:"x"`
	Y     int `json:"y"`
}

type ListStopsResponse struct {
	Stops []StopResponse `json:"stops"`
}
