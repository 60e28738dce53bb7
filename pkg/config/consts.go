package config

const (
	EnvPrefix = "cafeoro"

	AppEnvDev  = "dev"
	AppEnvProd = "production"

	StorageBackendMemory = "memory"
	StorageBackendSQLite = "sqlite"
	StorageBackendRedis  = "redis"

	EnvStorageBackend = "CAFEORO_STORAGE_BACKEND"
	EnvRedisURL       = "CAFEORO_REDIS_URL"
	EnvRedisAddr      = "CAFEORO_REDIS_ADDR"
)
