package response_models

import (
	"voyager/internal/catalog"
	"voyager/internal/nlu"
	"voyager/internal/planner"
)

type PlanResponse struct {
	NLU  nlu.Result   `json:"nlu"`
	Plan planner.Plan `json:"plan"`

	// Travel context for ok plans when the places are known to the tools.
	Route   *RouteEstimate `json:"route,omitempty"`
	Weather *Forecast      `json:"weather,omitempty"`
}

type ChatResponse struct {
	NLU       nlu.Result    `json:"nlu"`
	Plan      *planner.Plan `json:"plan,omitempty"`
	Assistant string        `json:"assistant"`
}

type CityPOIs struct {
	City      string        `json:"city"`
	Interests []string      `json:"interests,omitempty"`
	POIs      []catalog.POI `json:"pois"`
}

type Health struct {
	Service    string `json:"service"`
	Status     string `json:"status"`
	LLMBackend string `json:"llm_backend"`
	Cities     int    `json:"cities"`
}
