package config

// StorageConfig описывает расположение файла снимка.
type StorageConfig struct {
	DataFile string `yaml:"data_file" env:"JOURNAL_DATA_FILE" env-default:"data.json"`
}
