package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/rs/zerolog"

	"github.com/jhoicas/pdv-api/pkg/config"
)

//go:embed migrations/*.sql
var migrations embed.FS

const versionTable = "schema_version"

// Migrate aplica las migraciones embebidas hasta la última versión usando una conexión dedicada.
func Migrate(ctx context.Context, cfg config.DBConfig, log zerolog.Logger) error {
	conn, err := pgx.Connect(ctx, cfg.ConnectionString())
	if err != nil {
		return fmt.Errorf("conectar para migrar: %w", err)
	}
	defer conn.Close(ctx)

	m, err := tern.NewMigrator(ctx, conn, versionTable)
	if err != nil {
		return fmt.Errorf("crear migrador: %w", err)
	}

	subtree, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("leer migraciones embebidas: %w", err)
	}
	if err := m.LoadMigrations(subtree); err != nil {
		return fmt.Errorf("cargar migraciones: %w", err)
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("versión actual del esquema: %w", err)
	}
	if err := m.Migrate(ctx); err != nil {
		return fmt.Errorf("aplicar migraciones: %w", err)
	}

	to := int32(len(m.Migrations))
	if from == to {
		log.Info().Int32("version", to).Msg("esquema ya actualizado")
		return nil
	}
	log.Info().Int32("from", from).Int32("to", to).Msg("migraciones aplicadas")
	return nil
}
