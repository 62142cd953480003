package jobs

type Config struct {
	Enabled bool `envconfig:"ENABLED" default:"true"`
	// Locations места для прогрева панчанги, "Name:lat:lon:tz;..."
	Locations string `envconfig:"LOCATIONS" default:"Delhi:28.6139:77.2090:5.5;Mumbai:19.0760:72.8777:5.5;Varanasi:25.3176:82.9739:5.5"`
	// Hour и Minute время ежедневного прогрева по UTC
	Hour       int  `envconfig:"HOUR" default:"0"`
	Minute     int  `envconfig:"MINUTE" default:"5"`
	DaysAhead  int  `envconfig:"DAYS_AHEAD" default:"2"`
	RunOnStart bool `envconfig:"RUN_ON_START" default:"true"`
}
