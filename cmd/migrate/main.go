package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/rvilela/AgroCampo-api/pkg/config"
	"github.com/rvilela/AgroCampo-api/pkg/logger"
)

// Aplica as migrações do diretório migrations/ contra o banco configurado.
//
//	go run ./cmd/migrate            # up
//	go run ./cmd/migrate -down 1    # desfaz N passos
func main() {
	var down int
	var dir string
	flag.IntVar(&down, "down", 0, "desfaz N migrações em vez de aplicar")
	flag.StringVar(&dir, "dir", "migrations", "diretório das migrações")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	dsn := cfg.DB.ConnectionString()
	m, err := migrate.New("file://"+dir, fmt.Sprintf("pgx5://%s", stripScheme(dsn)))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir migrações")
	}
	defer m.Close()

	if down > 0 {
		err = m.Steps(-down)
	} else {
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal().Err(err).Msg("aplicar migrações")
	}

	version, dirty, _ := m.Version()
	log.Info().Uint("version", version).Bool("dirty", dirty).Msg("migrações aplicadas")
	os.Exit(0)
}

// stripScheme remove o prefixo postgres:// ou postgresql:// do DSN; o driver
// pgx5 do golang-migrate espera o próprio scheme.
func stripScheme(dsn string) string {
	for _, p := range []string{"postgresql://", "postgres://"} {
		if len(dsn) > len(p) && dsn[:len(p)] == p {
			return dsn[len(p):]
		}
	}
	return dsn
}
