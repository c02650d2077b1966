package config

// PasswordConfig задает стоимость bcrypt.
type PasswordConfig struct {
	BcryptCost int `yaml:"bcrypt_cost" env:"JOURNAL_BCRYPT_COST" env-default:"10"`
}
