package config

type App struct {
	Port        string `envconfig:"APP_PORT" default:"8080"`
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
	JWTSecret   string `envconfig:"JWT_SECRET" default:"local_dev_secret"`
	Env         string `envconfig:"APP_ENV" default:"dev"`

	// Single operator account; the password is stored bcrypt-hashed.
	AdminUser         string `envconfig:"ADMIN_USER" default:"admin"`
	AdminPasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" required:"true"`

	// Nominatim-compatible endpoint used to geocode rental addresses.
	GeocodeBaseURL string `envconfig:"GEOCODE_BASE_URL" default:"https://nominatim.openstreetmap.org"`
}
