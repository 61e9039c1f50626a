package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server    Server
	Database  Database
	Gemini    Gemini
	Interview Interview
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type Gemini struct {
	ApiKey string
	Model  string
}

// Interview holds the tuning knobs for question generation and grading.
type Interview struct {
	QuestionCount       int // questions requested for a plain job-description interview
	ResumeQuestionCount int // questions requested when generating from a resume PDF
	MinQuestionCount    int // setup fails below this many parsed questions
	MinTranscriptChars  int // answers at or below this length are never graded
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("INTERVIEW_QUESTION_COUNT", 5)
	viper.SetDefault("RESUME_QUESTION_COUNT", 15)
	viper.SetDefault("MIN_QUESTION_COUNT", 5)
	viper.SetDefault("MIN_TRANSCRIPT_CHARS", 10)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Gemini.ApiKey = viper.GetString("GEMINI_API_KEY")
	config.Gemini.Model = viper.GetString("GEMINI_MODEL")

	config.Interview.QuestionCount = viper.GetInt("INTERVIEW_QUESTION_COUNT")
	config.Interview.ResumeQuestionCount = viper.GetInt("RESUME_QUESTION_COUNT")
	config.Interview.MinQuestionCount = viper.GetInt("MIN_QUESTION_COUNT")
	config.Interview.MinTranscriptChars = viper.GetInt("MIN_TRANSCRIPT_CHARS")

	log.Info().Str("port", config.Server.Port).Str("model", config.Gemini.Model).Msg("Config loaded")
	return &config, nil
}
