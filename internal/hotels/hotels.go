package hotels

type Hotels []Hotel

type Hotel struct {
	Id       string   `json:"id"`
	Rank     int      `json:"rank"`
	Name     string   `json:"name"`
	Website  string   `json:"website"`
	Location Location `json:"location"`
}

type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	City    string  `json:"city"`
	Country string  `json:"country"`
}
