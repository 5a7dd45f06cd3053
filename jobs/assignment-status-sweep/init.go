package main

import (
	"log/slog"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/rcsa-framework/rcsa-backend/pkg/db"
	"github.com/rcsa-framework/rcsa-backend/pkg/utils"

	assessmentDB "github.com/rcsa-framework/rcsa-backend/pkg/db/assessment"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	// Variables to override "secrets" in the config file
	ENV_ASSESSMENT_DB_USERNAME = "ASSESSMENT_DB_USERNAME"
	ENV_ASSESSMENT_DB_PASSWORD = "ASSESSMENT_DB_PASSWORD"
)

type config struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// DB configs
	DBConfigs struct {
		AssessmentDB db.DBConfigYaml `json:"assessment_db" yaml:"assessment_db"`
	} `json:"db_configs" yaml:"db_configs"`

	InstanceIDs []string `json:"instance_ids" yaml:"instance_ids"`
}

var conf config

var (
	assessmentDBService *assessmentDB.AssessmentDBService
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

	// init db
	initDBs()
}

func secretsOverride() {
	if dbUsername := os.Getenv(ENV_ASSESSMENT_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.AssessmentDB.Username = dbUsername
	}
	if dbPassword := os.Getenv(ENV_ASSESSMENT_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.AssessmentDB.Password = dbPassword
	}
}

func initDBs() {
	var err error
	assessmentDBService, err = assessmentDB.NewAssessmentDBService(db.DBConfigFromYamlObj(conf.DBConfigs.AssessmentDB, conf.InstanceIDs))
	if err != nil {
		slog.Error("Error connecting to Assessment DB", slog.String("error", err.Error()))
		panic(err)
	}
}
