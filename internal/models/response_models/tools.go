package response_models

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type RouteEstimate struct {
	DistanceKm  float64 `json:"distance_km"`
	DurationMin int     `json:"duration_min"`
}

type DailyWeather struct {
	Date        string  `json:"date"`
	TempMax     float64 `json:"temp_max"`
	TempMin     float64 `json:"temp_min"`
	WeatherCode int     `json:"weathercode"`
}

type Forecast struct {
	Daily []DailyWeather `json:"daily"`
}

type Conversion struct {
	Rate      float64 `json:"rate"`
	Converted float64 `json:"converted"`
}

type CountryInfo struct {
	CCA2   string `json:"cca2,omitempty"`
	Name   string `json:"name"`
	Region string `json:"region,omitempty"`
}

type Holiday struct {
	Date string `json:"date"`
	Name string `json:"name"`
}
