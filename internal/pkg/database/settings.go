package database

import "fmt"

type PostgresSettings struct {
	User       string `env:"USER" envDefault:"admin"`
	Password   string `env:"PASSWORD" envDefault:"password"`
	Host       string `env:"HOST" envDefault:"localhost"`
	Port       string `env:"PORT" envDefault:"5432"`
	DBName     string `env:"NAME" envDefault:"article_market_db"`
	SSlEnabled bool   `env:"SSL_ENABLED" envDefault:"false"`
}

func (s PostgresSettings) GetURL() string {
	url := fmt.Sprintf("postgres://%s:%s@%s:%s/%s", s.User, s.Password, s.Host, s.Port, s.DBName)
	if !s.SSlEnabled {
		url += "?sslmode=disable"
	}

	return url
}
