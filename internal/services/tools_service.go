package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/golang/geo/s2"
	"go.uber.org/zap"

	"voyager/internal/models/response_models"
	"voyager/internal/nlu"
	"voyager/pkg/memcache"
	"voyager/pkg/utils"
)

const (
	earthRadiusKm = 6371.0
	roadSpeedKmh  = 40.0
	routeOverhead = 30

	geocodeTTL  = 30 * 24 * time.Hour
	routeTTL    = 24 * time.Hour
	weatherTTL  = 6 * time.Hour
	fxTTL       = 12 * time.Hour
	countryTTL  = 30 * 24 * time.Hour
	holidaysTTL = 30 * 24 * time.Hour

	toolMode = "mock"

	// maxForecastDays bounds the span of one weather request.
	maxForecastDays = 31
)

var mockGeocodes = map[string]response_models.GeoPoint{
	"Goa":       {Lat: 15.4909, Lon: 73.8278},
	"Jaipur":    {Lat: 26.9124, Lon: 75.7873},
	"Manali":    {Lat: 32.2396, Lon: 77.1887},
	"Singapore": {Lat: 1.3521, Lon: 103.8198},
	"Mumbai":    {Lat: 19.0760, Lon: 72.8777},
	"Delhi":     {Lat: 28.6139, Lon: 77.2090},
}

var mockRates = map[string]float64{
	"USD_INR": 83.0,
	"EUR_INR": 90.0,
	"INR_USD": 1 / 83.0,
}

var mockCountries = map[string]response_models.CountryInfo{
	"India":     {CCA2: "IN", Name: "India", Region: "Asia"},
	"Singapore": {CCA2: "SG", Name: "Singapore", Region: "Asia"},
}

type ToolsServiceInterface interface {
	Geocode(ctx context.Context, city string) (*response_models.GeoPoint, error)
	Route(ctx context.Context, from, to response_models.GeoPoint) (response_models.RouteEstimate, error)
	RouteBetween(ctx context.Context, fromCity, toCity string) (*response_models.RouteEstimate, error)
	Weather(ctx context.Context, at response_models.GeoPoint, start, end string) (response_models.Forecast, error)
	ConvertCurrency(ctx context.Context, amount float64, from, to string) (response_models.Conversion, error)
	CountryInfo(ctx context.Context, name string) (response_models.CountryInfo, error)
	PublicHolidays(ctx context.Context, countryCode string, year int) ([]response_models.Holiday, error)
}

// ToolsService answers travel data lookups from fixed tables. Every lookup
// goes through fetch so results are cached under a hashed request key.
type ToolsService struct {
	cache memcache.TTLStore
	log   *zap.Logger
}

func NewToolsService(cache memcache.TTLStore, log *zap.Logger) ToolsServiceInterface {
	return &ToolsService{cache: cache, log: log}
}

func cacheKey(parts ...any) string {
	h := sha256.Sum256([]byte(fmt.Sprint(parts...)))
	return hex.EncodeToString(h[:])
}

// fetch returns the cached value for key or computes, stores and returns it.
// A cache write failure is logged and does not fail the lookup.
func fetch[T any](ctx context.Context, s *ToolsService, key string, ttl time.Duration, fn func(context.Context) (T, error)) (T, error) {
	if raw, ok := s.cache.Get(key); ok {
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		s.log.Warn("Dropping undecodable cache entry", zap.String("key", key))
		_ = s.cache.Delete(key)
	}

	val, err := fn(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	raw, err := json.Marshal(val)
	if err == nil {
		err = s.cache.Set(key, raw, ttl)
	}
	if err != nil {
		s.log.Warn("Tool cache write failed", zap.String("key", key), zap.Error(err))
	}
	return val, nil
}

func (s *ToolsService) Geocode(ctx context.Context, city string) (*response_models.GeoPoint, error) {
	name := utils.TitleCase(city)
	key := cacheKey("geocode:", name, ":", toolMode)
	return fetch(ctx, s, key, geocodeTTL, func(context.Context) (*response_models.GeoPoint, error) {
		p, ok := mockGeocodes[name]
		if !ok {
			return nil, nil
		}
		return &p, nil
	})
}

// Route estimates a road trip from the great-circle distance at a flat
// average speed plus a fixed overhead.
func (s *ToolsService) Route(ctx context.Context, from, to response_models.GeoPoint) (response_models.RouteEstimate, error) {
	key := cacheKey("route:", from.Lat, ":", from.Lon, ":", to.Lat, ":", to.Lon, ":", toolMode)
	return fetch(ctx, s, key, routeTTL, func(context.Context) (response_models.RouteEstimate, error) {
		a := s2.LatLngFromDegrees(from.Lat, from.Lon)
		b := s2.LatLngFromDegrees(to.Lat, to.Lon)
		km := a.Distance(b).Radians() * earthRadiusKm
		return response_models.RouteEstimate{
			DistanceKm:  math.Round(km*10) / 10,
			DurationMin: int(km/roadSpeedKmh*60) + routeOverhead,
		}, nil
	})
}

// RouteBetween geocodes both cities first; nil means one of them is unknown.
func (s *ToolsService) RouteBetween(ctx context.Context, fromCity, toCity string) (*response_models.RouteEstimate, error) {
	from, err := s.Geocode(ctx, fromCity)
	if err != nil || from == nil {
		return nil, err
	}
	to, err := s.Geocode(ctx, toCity)
	if err != nil || to == nil {
		return nil, err
	}
	r, err := s.Route(ctx, *from, *to)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *ToolsService) Weather(ctx context.Context, at response_models.GeoPoint, start, end string) (response_models.Forecast, error) {
	sd, err := nlu.ParseDate(start)
	if err != nil {
		return response_models.Forecast{}, fmt.Errorf("%w: start date: %v", utils.ErrInvalidInput, err)
	}
	ed, err := nlu.ParseDate(end)
	if err != nil {
		return response_models.Forecast{}, fmt.Errorf("%w: end date: %v", utils.ErrInvalidInput, err)
	}
	if span := sd.DaysUntil(ed) + 1; span > maxForecastDays {
		return response_models.Forecast{}, fmt.Errorf("%w: forecast span of %d days exceeds %d", utils.ErrInvalidInput, span, maxForecastDays)
	}

	key := cacheKey("weather:", at.Lat, ":", at.Lon, ":", sd, ":", ed, ":", toolMode)
	return fetch(ctx, s, key, weatherTTL, func(context.Context) (response_models.Forecast, error) {
		out := response_models.Forecast{Daily: []response_models.DailyWeather{}}
		for cur := sd; !cur.After(ed.Time); cur = cur.AddDays(1) {
			out.Daily = append(out.Daily, response_models.DailyWeather{
				Date:        cur.String(),
				TempMax:     30,
				TempMin:     24,
				WeatherCode: 0,
			})
		}
		return out, nil
	})
}

// ConvertCurrency caches the rate per pair; the amount is applied per call.
func (s *ToolsService) ConvertCurrency(ctx context.Context, amount float64, from, to string) (response_models.Conversion, error) {
	pair := strings.ToUpper(from) + "_" + strings.ToUpper(to)
	key := cacheKey("fx:", pair, ":", toolMode)
	rate, err := fetch(ctx, s, key, fxTTL, func(context.Context) (float64, error) {
		if r, ok := mockRates[pair]; ok {
			return r, nil
		}
		return 1.0, nil
	})
	if err != nil {
		return response_models.Conversion{}, err
	}
	return response_models.Conversion{
		Rate:      rate,
		Converted: math.Round(amount*rate*100) / 100,
	}, nil
}

func (s *ToolsService) CountryInfo(ctx context.Context, name string) (response_models.CountryInfo, error) {
	key := cacheKey("country:", name, ":", toolMode)
	return fetch(ctx, s, key, countryTTL, func(context.Context) (response_models.CountryInfo, error) {
		if c, ok := mockCountries[utils.TitleCase(name)]; ok {
			return c, nil
		}
		return response_models.CountryInfo{Name: name}, nil
	})
}

func (s *ToolsService) PublicHolidays(ctx context.Context, countryCode string, year int) ([]response_models.Holiday, error) {
	key := cacheKey("holidays:", strings.ToUpper(countryCode), ":", year, ":", toolMode)
	return fetch(ctx, s, key, holidaysTTL, func(context.Context) ([]response_models.Holiday, error) {
		return []response_models.Holiday{}, nil
	})
}
