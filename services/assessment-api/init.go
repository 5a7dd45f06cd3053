package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gopkg.in/yaml.v2"

	"github.com/rcsa-framework/rcsa-backend/pkg/apihelpers"
	"github.com/rcsa-framework/rcsa-backend/pkg/assessment"
	"github.com/rcsa-framework/rcsa-backend/pkg/assessment/localization"
	"github.com/rcsa-framework/rcsa-backend/pkg/assessment/questionbank"
	"github.com/rcsa-framework/rcsa-backend/pkg/cache"
	"github.com/rcsa-framework/rcsa-backend/pkg/db"
	"github.com/rcsa-framework/rcsa-backend/pkg/notifications"
	"github.com/rcsa-framework/rcsa-backend/pkg/utils"

	assessmentDB "github.com/rcsa-framework/rcsa-backend/pkg/db/assessment"
	userDB "github.com/rcsa-framework/rcsa-backend/pkg/db/user"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	// Variables to override "secrets" in the config file
	ENV_ASSESSMENT_DB_USERNAME = "ASSESSMENT_DB_USERNAME"
	ENV_ASSESSMENT_DB_PASSWORD = "ASSESSMENT_DB_PASSWORD"
	ENV_USER_DB_USERNAME       = "USER_DB_USERNAME"
	ENV_USER_DB_PASSWORD       = "USER_DB_PASSWORD"

	ENV_MANAGEMENT_USER_JWT_SIGN_KEY = "MANAGEMENT_USER_JWT_SIGN_KEY"

	ENV_REDIS_PASSWORD = "REDIS_PASSWORD"

	ENV_SMTP_SERVER_CONFIG_PATH = "SMTP_SERVER_CONFIG_PATH"
)

type config struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// Gin configs
	GinConfig struct {
		DebugMode    bool     `json:"debug_mode" yaml:"debug_mode"`
		AllowOrigins []string `json:"allow_origins" yaml:"allow_origins"`
		Port         string   `json:"port" yaml:"port"`

		// Mutual TLS configs
		MTLS struct {
			Use              bool                        `json:"use" yaml:"use"`
			CertificatePaths apihelpers.CertificatePaths `json:"certificate_paths" yaml:"certificate_paths"`
		} `json:"mtls" yaml:"mtls"`
	} `json:"gin_config" yaml:"gin_config"`

	// JWT configs
	ManagementUserJWTSignKey string `json:"management_user_jwt_sign_key" yaml:"management_user_jwt_sign_key"`

	AllowedInstanceIDs []string `json:"allowed_instance_ids" yaml:"allowed_instance_ids"`

	// DB configs
	DBConfigs struct {
		AssessmentDB db.DBConfigYaml `json:"assessment_db" yaml:"assessment_db"`
		UserDB       db.DBConfigYaml `json:"user_db" yaml:"user_db"`
	} `json:"db_configs" yaml:"db_configs"`

	// Results cache configs, cache is disabled when address is empty
	RedisConfig struct {
		Address    string `json:"address" yaml:"address"`
		Password   string `json:"password" yaml:"password"`
		DB         int    `json:"db" yaml:"db"`
		ResultsTTL string `json:"results_ttl" yaml:"results_ttl"`
	} `json:"redis_config" yaml:"redis_config"`

	// Assignment notification emails, disabled when path is empty
	SmtpServerConfigPath string `json:"smtp_server_config_path" yaml:"smtp_server_config_path"`
}

var conf config

var (
	assessmentDBService *assessmentDB.AssessmentDBService
	userDBService       *userDB.UserDBService
	resultsCache        cache.ResultsCache
)

func init() {
	// Read config from file
	yamlFile, err := os.ReadFile(os.Getenv(ENV_CONFIG_FILE_PATH))
	if err != nil {
		panic(err)
	}

	err = yaml.UnmarshalStrict(yamlFile, &conf)
	if err != nil {
		panic(err)
	}

	// Init logger:
	utils.InitLogger(
		conf.Logging.LogLevel,
		conf.Logging.IncludeSrc,
		conf.Logging.LogToFile,
		conf.Logging.Filename,
		conf.Logging.MaxSize,
		conf.Logging.MaxAge,
		conf.Logging.MaxBackups,
		conf.Logging.CompressOldLogs,
		conf.Logging.IncludeBuildInfo,
	)

	// Override secrets from environment variables
	secretsOverride()

	if !conf.GinConfig.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	if conf.ManagementUserJWTSignKey == "" {
		slog.Error("JWT sign key not set - configure management_user_jwt_sign_key in the config file or MANAGEMENT_USER_JWT_SIGN_KEY env variable.")
		panic("JWT sign key not set")
	}

	// init db
	initDBs()

	// init assessment service
	initAssessmentService()
}

func secretsOverride() {
	if dbUsername := os.Getenv(ENV_ASSESSMENT_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.AssessmentDB.Username = dbUsername
	}
	if dbPassword := os.Getenv(ENV_ASSESSMENT_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.AssessmentDB.Password = dbPassword
	}
	if dbUsername := os.Getenv(ENV_USER_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.UserDB.Username = dbUsername
	}
	if dbPassword := os.Getenv(ENV_USER_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.UserDB.Password = dbPassword
	}
	if jwtSignKey := os.Getenv(ENV_MANAGEMENT_USER_JWT_SIGN_KEY); jwtSignKey != "" {
		conf.ManagementUserJWTSignKey = jwtSignKey
	}
	if redisPassword := os.Getenv(ENV_REDIS_PASSWORD); redisPassword != "" {
		conf.RedisConfig.Password = redisPassword
	}
	if smtpConfigPath := os.Getenv(ENV_SMTP_SERVER_CONFIG_PATH); smtpConfigPath != "" {
		conf.SmtpServerConfigPath = smtpConfigPath
	}
}

func initDBs() {
	var err error
	assessmentDBService, err = assessmentDB.NewAssessmentDBService(db.DBConfigFromYamlObj(conf.DBConfigs.AssessmentDB, conf.AllowedInstanceIDs))
	if err != nil {
		slog.Error("Error connecting to Assessment DB", slog.String("error", err.Error()))
		panic(err)
	}

	userDBService, err = userDB.NewUserDBService(db.DBConfigFromYamlObj(conf.DBConfigs.UserDB, conf.AllowedInstanceIDs))
	if err != nil {
		slog.Error("Error connecting to User DB", slog.String("error", err.Error()))
		panic(err)
	}
}

func initResultsCache() cache.ResultsCache {
	if conf.RedisConfig.Address == "" {
		slog.Info("Redis not configured, results are recomputed on every read")
		return cache.NewNoopResultsCache()
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     conf.RedisConfig.Address,
		Password: conf.RedisConfig.Password,
		DB:       conf.RedisConfig.DB,
	})

	if conf.RedisConfig.ResultsTTL != "" {
		ttl, err := utils.ParseDurationString(conf.RedisConfig.ResultsTTL)
		if err != nil {
			slog.Error("Invalid results cache TTL", slog.String("error", err.Error()))
			panic(err)
		}
		assessment.SetResultsCacheTTL(ttl)
	}
	return cache.NewRedisResultsCache(rdb)
}

func initNotifier(catalog *localization.Catalog) *notifications.AssignmentNotifier {
	if conf.SmtpServerConfigPath == "" {
		slog.Info("SMTP not configured, assignment notifications are disabled")
		return notifications.NewAssignmentNotifier(nil, catalog)
	}

	smtpServerList := notifications.SmtpServerList{}
	if err := smtpServerList.ReadFromFile(conf.SmtpServerConfigPath); err != nil {
		slog.Error("Error reading SMTP server config", slog.String("error", err.Error()))
		panic(err)
	}
	smtpClients, err := notifications.NewSmtpClients(smtpServerList)
	if err != nil {
		slog.Error("Error setting up SMTP clients", slog.String("error", err.Error()))
		panic(err)
	}
	return notifications.NewAssignmentNotifier(smtpClients, catalog)
}

func initAssessmentService() {
	questions := questionbank.Default()
	if err := questionbank.Validate(questions); err != nil {
		slog.Error("Question bank is invalid", slog.String("error", err.Error()))
		panic(err)
	}
	catalog := localization.Default()

	resultsCache = initResultsCache()

	assessment.Init(
		assessmentDBService,
		userDBService,
		resultsCache,
		initNotifier(catalog),
		questions,
		catalog,
	)
}
