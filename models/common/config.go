package common

import (
	"fmt"
	"os"

	"github.com/hetarchief/aip-services/constants"
	"github.com/hetarchief/aip-services/util"
	"github.com/op/go-logging"
	"github.com/spf13/viper"
)

type Config struct {
	AIPFolder              string
	CleanupSIP             bool
	ConfigName             string
	DefaultArchiveLocation string
	DiskContentPartners    []string
	Host                   string
	LogDir                 string
	LogLevel               logging.Level
	NsqChannel             string
	NsqLookupd             string
	NsqProducerTopic       string
	NsqTopic               string
	NsqURL                 string
	PidServiceURL          string
	RedisDefaultDB         int
	RedisPassword          string
	RedisURL               string
	S3Bucket               string
	S3Host                 string
	S3KeyID                string
	S3Secret               string
	S3UseSSL               bool
	SidecarVersion         string
	TapeContentPartners    []string
	VerifyFixity           bool
}

var logLevels = map[string]logging.Level{
	"CRITICAL": logging.CRITICAL,
	"ERROR":    logging.ERROR,
	"WARNING":  logging.WARNING,
	"NOTICE":   logging.NOTICE,
	"INFO":     logging.INFO,
	"DEBUG":    logging.DEBUG,
}

// NewConfig returns a new config based on ENV var AIP_SERVICES_CONFIG.
func NewConfig() *Config {
	config := loadConfig()
	config.expandPaths()
	config.sanityCheck()
	config.makeDirs()
	return config
}

func loadConfig() *Config {
	configDir, envName := getEnvVars()
	v := viper.New()
	v.AddConfigPath(configDir)
	v.SetConfigName(".env." + envName)
	v.SetConfigType("env")
	v.SetDefault("CLEANUP_SIP", true)
	v.SetDefault("VERIFY_FIXITY", false)
	v.SetDefault("DEFAULT_ARCHIVE_LOCATION", constants.ArchiveLocationTape)
	v.SetDefault("NSQ_CHANNEL", "aip-creator")
	err := v.ReadInConfig()
	if err != nil {
		panic(fmt.Errorf("Fatal error config file: %s \n", err))
	}
	return &Config{
		AIPFolder:              v.GetString("AIP_FOLDER"),
		CleanupSIP:             v.GetBool("CLEANUP_SIP"),
		ConfigName:             envName,
		DefaultArchiveLocation: v.GetString("DEFAULT_ARCHIVE_LOCATION"),
		DiskContentPartners:    util.SplitAndTrim(v.GetString("DISK_CONTENT_PARTNERS")),
		Host:                   v.GetString("HOST"),
		LogDir:                 v.GetString("LOG_DIR"),
		LogLevel:               logLevels[v.GetString("LOG_LEVEL")],
		NsqChannel:             v.GetString("NSQ_CHANNEL"),
		NsqLookupd:             v.GetString("NSQ_LOOKUPD"),
		NsqProducerTopic:       v.GetString("NSQ_PRODUCER_TOPIC"),
		NsqTopic:               v.GetString("NSQ_TOPIC"),
		NsqURL:                 v.GetString("NSQ_URL"),
		PidServiceURL:          v.GetString("PID_SERVICE_URL"),
		RedisDefaultDB:         v.GetInt("REDIS_DEFAULT_DB"),
		RedisPassword:          v.GetString("REDIS_PASSWORD"),
		RedisURL:               v.GetString("REDIS_URL"),
		S3Bucket:               v.GetString("S3_BUCKET"),
		S3Host:                 v.GetString("S3_HOST"),
		S3KeyID:                v.GetString("S3_KEY"),
		S3Secret:               v.GetString("S3_SECRET"),
		S3UseSSL:               v.GetBool("S3_USE_SSL"),
		SidecarVersion:         v.GetString("MH_SIDECAR_VERSION"),
		TapeContentPartners:    util.SplitAndTrim(v.GetString("TAPE_CONTENT_PARTNERS")),
		VerifyFixity:           v.GetBool("VERIFY_FIXITY"),
	}
}

func getEnvVars() (string, string) {
	configDir := getRequiredEnvVar("AIP_CONFIG_DIR")
	envName := getRequiredEnvVar("AIP_SERVICES_CONFIG")
	return configDir, envName
}

func getRequiredEnvVar(varName string) string {
	value := os.Getenv(varName)
	if value == "" {
		panic(fmt.Sprintf("Required env var %s not set", varName))
	}
	return value
}

// Expand ~ to home dir in path settings.
func (c *Config) expandPaths() {
	c.AIPFolder = expandPath(c.AIPFolder)
	c.LogDir = expandPath(c.LogDir)
}

func expandPath(dirName string) string {
	dir, err := util.ExpandTilde(dirName)
	if err != nil {
		panic(err)
	}
	return dir
}

func (c *Config) sanityCheck() {
	if c.AIPFolder == "" {
		panic("Config is missing AIP_FOLDER")
	}
	if c.SidecarVersion == "" {
		panic("Config is missing MH_SIDECAR_VERSION")
	}
	if c.DefaultArchiveLocation != constants.ArchiveLocationDisk &&
		c.DefaultArchiveLocation != constants.ArchiveLocationTape {
		panic(fmt.Sprintf("Invalid DEFAULT_ARCHIVE_LOCATION %q", c.DefaultArchiveLocation))
	}
}

func (c *Config) makeDirs() {
	dirs := []string{
		c.AIPFolder,
		c.LogDir,
	}
	for _, dir := range dirs {
		err := os.MkdirAll(dir, 0755)
		if err != nil {
			panic(err)
		}
	}
}
