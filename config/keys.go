package config

const (
	delimiter = "."

	ConfigPrefix = "config"

	ConfigCachePrefix   = ConfigPrefix + delimiter + "cache"
	ConfigCacheCapacity = ConfigCachePrefix + delimiter + "capacity"

	ConfigLogPrefix      = ConfigPrefix + delimiter + "log"
	ConfigLogLevel       = ConfigLogPrefix + delimiter + "level"
	ConfigLogDevelopment = ConfigLogPrefix + delimiter + "development"

	ConfigFibPrefix = ConfigPrefix + delimiter + "fib"
	ConfigFibN      = ConfigFibPrefix + delimiter + "n"
)
