package conf

import "time"

// Bootstrap is the top-level configuration scanned from the config file.
type Bootstrap struct {
	Server *Server `json:"server"`
	Data   *Data   `json:"data"`
	Cookie *Cookie `json:"cookie"`
}

// Server holds transport configuration.
type Server struct {
	Http *HTTP `json:"http"`
}

// HTTP holds the HTTP server configuration.
type HTTP struct {
	Network string   `json:"network"`
	Addr    string   `json:"addr"`
	Timeout Duration `json:"timeout"`
}

// Data holds storage configuration.
type Data struct {
	Database *Database `json:"database"`
	Redis    *Redis    `json:"redis"`
}

// Database holds the persistent store configuration.
type Database struct {
	Driver string `json:"driver"`
	Source string `json:"source"`
}

// Redis holds the cache tier configuration. An empty Addr disables the
// cache entirely; resolution then always goes to the store.
type Redis struct {
	Addr         string   `json:"addr"`
	Password     string   `json:"password"`
	DB           int      `json:"db"`
	DialTimeout  Duration `json:"dial_timeout"`
	ReadTimeout  Duration `json:"read_timeout"`
	WriteTimeout Duration `json:"write_timeout"`
	CacheTTL     Duration `json:"cache_ttl"`
}

// Cookie configures the visit-state cookie.
type Cookie struct {
	Name string `json:"name"`
	// Variant selects the tracker implementation: "set" keeps the list
	// of visited codes, "flag" only remembers that any link was visited.
	Variant string `json:"variant"`
}

// Duration is a config duration in time.ParseDuration notation ("500ms", "10m").
type Duration string

// AsDuration parses the duration, returning def when unset or malformed.
func (d Duration) AsDuration(def time.Duration) time.Duration {
	if d == "" {
		return def
	}
	v, err := time.ParseDuration(string(d))
	if err != nil {
		return def
	}
	return v
}
