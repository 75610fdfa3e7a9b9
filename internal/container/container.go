// Package container shares constructed infrastructure across packages so the
// router can auto-wire feature modules from these singletons.
package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/rhythmicmansion/server/config"
	"github.com/rhythmicmansion/server/internal/infrastructure/postgres"
	"github.com/rhythmicmansion/server/pkg/helpers"
)

var (
	cfg         *config.Config
	logger      *logrus.Logger
	db          *postgres.DB
	redisClient *redis.Client
	jwtManager  *helpers.JWTManager
)

func SetConfig(c *config.Config)   { cfg = c }
func GetConfig() *config.Config    { return cfg }
func SetLogger(l *logrus.Logger)   { logger = l }
func GetLogger() *logrus.Logger    { return logger }
func SetDB(d *postgres.DB)         { db = d }
func GetDB() *postgres.DB          { return db }
func SetRedis(r *redis.Client)     { redisClient = r }
func GetRedis() *redis.Client      { return redisClient }
func SetJWT(m *helpers.JWTManager) { jwtManager = m }
func GetJWT() *helpers.JWTManager  { return jwtManager }
