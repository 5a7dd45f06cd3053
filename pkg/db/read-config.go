package db

import (
	"fmt"
	"log/slog"
)

func DBConfigFromYamlObj(yamlObj DBConfigYaml, instanceIDs []string) DBConfig {
	if yamlObj.ConnectionStr == "" || yamlObj.Username == "" || yamlObj.Password == "" {
		slog.Error("couldn't read DB credentials from config")
		panic("couldn't read DB credentials from config")
	}
	URI := fmt.Sprintf(`mongodb%s://%s:%s@%s`, yamlObj.ConnectionPrefix, yamlObj.Username, yamlObj.Password, yamlObj.ConnectionStr)

	return DBConfig{
		URI:              URI,
		Timeout:          yamlObj.Timeout,
		IdleConnTimeout:  yamlObj.IdleConnTimeout,
		MaxPoolSize:      uint64(yamlObj.MaxPoolSize),
		NoCursorTimeout:  yamlObj.UseNoCursorTimeout,
		DBNamePrefix:     yamlObj.DBNamePrefix,
		InstanceIDs:      instanceIDs,
		RunIndexCreation: yamlObj.RunIndexCreation,
	}
}
