package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/TeuSpnl/comisys/internal/domain"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Ingestion      Ingestion      `mapstructure:",squash"`
	Commission     Commission     `mapstructure:",squash"`
	IntegritySweep IntegritySweep `mapstructure:",squash"`
	SecretKey      string         `mapstructure:"secret_key"`

	// Tabelas de comissão por filial, montadas a partir da seção Commission
	CommissionTables domain.CommissionTables `mapstructure:"-"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Ingestion struct {
	// Rótulo de coluna que marca a linha de cabeçalho na planilha
	HeaderSentinel string `mapstructure:"ingestion_header_sentinel"`
	// Clientes cujos pedidos são descartados (comparação por substring,
	// sem diferenciar maiúsculas)
	ExcludedCustomers []string `mapstructure:"ingestion_excluded_customers"`
}

// Commission guarda as regras de comissionamento como configuração para que
// um operador altere limiares e taxas sem mudança de código.
type Commission struct {
	LojaBaseRate            float64 `mapstructure:"commission_loja_base_rate"`
	LojaBonusTiers          string  `mapstructure:"commission_loja_bonus_tiers"`
	OficinaBaseRate         float64 `mapstructure:"commission_oficina_base_rate"`
	OficinaUpgradeRate      float64 `mapstructure:"commission_oficina_upgrade_rate"`
	OficinaUpgradeThreshold float64 `mapstructure:"commission_oficina_upgrade_threshold"`
	DefaultBranch           string  `mapstructure:"commission_default_branch"`
}

type IntegritySweep struct {
	CronSchedule string `mapstructure:"integrity_sweep_cron"`
	Enabled      bool   `mapstructure:"integrity_sweep_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/comisys")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("INGESTION_HEADER_SENTINEL", "data")
	viper.SetDefault("INGESTION_EXCLUDED_CUSTOMERS", "comagro,comagro oficina,comagro peças e serviços")

	// Regras vigentes de comissão: Loja 1% + bônus por degrau de meta;
	// Oficina 0,5% promovida a 1% quando a filial atinge 500 mil
	viper.SetDefault("COMMISSION_LOJA_BASE_RATE", 0.01)
	viper.SetDefault("COMMISSION_LOJA_BONUS_TIERS", "225000:0.006,170000:0.004,130000:0.003")
	viper.SetDefault("COMMISSION_OFICINA_BASE_RATE", 0.005)
	viper.SetDefault("COMMISSION_OFICINA_UPGRADE_RATE", 0.01)
	viper.SetDefault("COMMISSION_OFICINA_UPGRADE_THRESHOLD", 500000)
	viper.SetDefault("COMMISSION_DEFAULT_BRANCH", domain.BranchLoja)

	viper.SetDefault("INTEGRITY_SWEEP_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("INTEGRITY_SWEEP_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.CommissionTables, err = config.Commission.Tables()
	if err != nil {
		return nil, fmt.Errorf("configuração de comissão inválida: %w", err)
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Tables monta as tabelas de taxas por filial a partir da configuração.
func (c Commission) Tables() (domain.CommissionTables, error) {
	tiers, err := parseBonusTiers(c.LojaBonusTiers)
	if err != nil {
		return nil, err
	}

	return domain.CommissionTables{
		domain.BranchLoja: {
			BaseRate:   c.LojaBaseRate,
			BonusTiers: tiers,
		},
		domain.BranchOficina: {
			BaseRate:         c.OficinaBaseRate,
			UpgradeRate:      c.OficinaUpgradeRate,
			UpgradeThreshold: c.OficinaUpgradeThreshold,
		},
	}, nil
}

// parseBonusTiers interpreta pares "limiar:taxa" separados por vírgula,
// ex.: "225000:0.006,170000:0.004"
func parseBonusTiers(raw string) ([]domain.BonusTier, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var tiers []domain.BonusTier
	for _, pair := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("degrau de bônus malformado: %q", pair)
		}

		threshold, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, fmt.Errorf("limiar inválido em %q: %w", pair, err)
		}

		rate, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("taxa inválida em %q: %w", pair, err)
		}

		tiers = append(tiers, domain.BonusTier{Threshold: threshold, Rate: rate})
	}

	return tiers, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
