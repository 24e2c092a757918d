package usecases

import "github.com/rs/zerolog"

// WeatherService is the hourly weather check. The real integration (querying
// a weather backend with the configured key and notifying customers on bad
// conditions) is not implemented; the job only records that it ran.
// TODO: call OpenWeatherMap with the reserved WEATHER_API_KEY and notify on high humidity.
type WeatherService struct {
	APIKey string
	Log    zerolog.Logger
}

func NewWeatherService(apiKey string, log zerolog.Logger) *WeatherService {
	return &WeatherService{
		APIKey: apiKey,
		Log:    log.With().Str("component", "weather").Logger(),
	}
}

// Check runs one weather inspection cycle.
func (s *WeatherService) Check() {
	s.Log.Info().Msg("проверка погоды и отправка уведомлений")
}
