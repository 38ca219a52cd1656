package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Autocomplete.MaxSuggestions == 0 {
		cfg.Autocomplete.MaxSuggestions = 10
	}
	if cfg.Autocomplete.MaxQueryLength == 0 {
		cfg.Autocomplete.MaxQueryLength = 256
	}
	if cfg.Autocomplete.MaxEditDistance == 0 {
		cfg.Autocomplete.MaxEditDistance = 2
	}
	if cfg.Autocomplete.PerWordCandidates == 0 {
		cfg.Autocomplete.PerWordCandidates = 5
	}
	if cfg.Autocomplete.MaxCombinations == 0 {
		cfg.Autocomplete.MaxCombinations = 50
	}
}
