package db

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("package", "db")

// schemaStatements creates the three collections if they don't exist already.
var schemaStatements = []struct {
	table     string
	statement string
}{
	{
		table: "appointments",
		statement: `CREATE TABLE IF NOT EXISTS appointments (
			id SERIAL PRIMARY KEY,
			patient_name VARCHAR(100) NOT NULL,
			doctor_name VARCHAR(100) NOT NULL,
			"date" DATE NOT NULL,
			"time" TIME NOT NULL,
			reason TEXT,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	},
	{
		table: "results",
		statement: `CREATE TABLE IF NOT EXISTS results (
			id SERIAL PRIMARY KEY,
			patient_name VARCHAR(100) NOT NULL,
			test_type VARCHAR(100) NOT NULL,
			result_date DATE NOT NULL,
			result_value TEXT NOT NULL,
			notes TEXT,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	},
	{
		table: "notifications",
		statement: `CREATE TABLE IF NOT EXISTS notifications (
			id SERIAL PRIMARY KEY,
			title VARCHAR(200) NOT NULL,
			message TEXT NOT NULL,
			type VARCHAR(50) NOT NULL DEFAULT 'info',
			read BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	},
}

// CreateSchema creates the appointments, results and notifications tables if they don't exist.
func CreateSchema(ctx context.Context, db DatabaseAccessor) error {
	for _, s := range schemaStatements {
		if _, err := db.ExecContext(ctx, s.statement); err != nil {
			return errors.Wrapf(err, "unable to create the %s table", s.table)
		}
		log.Infof("%s table ready", s.table)
	}
	return nil
}

// demoData describes the rows inserted into a single empty collection at startup.
type demoData struct {
	table   string
	columns []string
	rows    [][]interface{}
}

var demoDataSets = []demoData{
	{
		table:   "appointments",
		columns: []string{"patient_name", "doctor_name", "date", "time", "reason"},
		rows: [][]interface{}{
			{"Juan Pérez", "Dra. María García", "2024-01-15", "10:00", "Consulta general"},
			{"Ana López", "Dr. Carlos Ruiz", "2024-01-16", "14:30", "Control de presión"},
			{"Pedro Martínez", "Dra. Laura Sánchez", "2024-01-17", "09:00", "Examen de sangre"},
		},
	},
	{
		table:   "results",
		columns: []string{"patient_name", "test_type", "result_date", "result_value", "notes"},
		rows: [][]interface{}{
			{"Juan Pérez", "Análisis de Sangre", "2024-01-10", "Normal", "Todos los valores dentro del rango"},
			{"Ana López", "Presión Arterial", "2024-01-08", "120/80 mmHg", "Presión normal"},
			{"Pedro Martínez", "Colesterol", "2024-01-05", "190 mg/dL", "Ligeramente elevado"},
		},
	},
	{
		table:   "notifications",
		columns: []string{"title", "message", "type"},
		rows: [][]interface{}{
			{"Recordatorio de Cita", "Tiene una cita mañana a las 10:00 AM", "reminder"},
			{"Resultados Disponibles", "Sus resultados de análisis de sangre están listos", "info"},
			{"Confirmar Cita", "Por favor confirme su cita del 17 de enero", "alert"},
		},
	},
}

// countRows returns the number of rows in a table.
func countRows(ctx context.Context, db DatabaseAccessor, table string) (int64, error) {
	wrapMsg := fmt.Sprintf("unable to count the rows in %s", table)
	var total int64

	query, args, err := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Select("count(*)").
		From(table).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, wrapMsg)
	}

	err = db.QueryRowContext(ctx, query, args...).Scan(&total)
	if err != nil {
		return 0, errors.Wrap(err, wrapMsg)
	}

	return total, nil
}

// seedTable inserts the demonstration rows into a table if it's empty, reporting whether any rows
// were inserted.
func seedTable(ctx context.Context, db DatabaseAccessor, data demoData) (bool, error) {
	wrapMsg := fmt.Sprintf("unable to insert sample data into %s", data.table)

	total, err := countRows(ctx, db, data.table)
	if err != nil {
		return false, errors.Wrap(err, wrapMsg)
	}
	if total > 0 {
		return false, nil
	}

	builder := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Insert(data.table).
		Columns(data.columns...)
	for _, row := range data.rows {
		builder = builder.Values(row...)
	}
	statement, args, err := builder.ToSql()
	if err != nil {
		return false, errors.Wrap(err, wrapMsg)
	}

	if _, err = db.ExecContext(ctx, statement, args...); err != nil {
		return false, errors.Wrap(err, wrapMsg)
	}

	return true, nil
}

// SeedDemoData populates each empty collection with a fixed set of demonstration records. Collections
// that already contain records are left alone. Failures are logged rather than returned so that a
// problem with the sample data never prevents the service from starting. The names of the tables that
// were populated are returned.
func SeedDemoData(ctx context.Context, db DatabaseAccessor) []string {
	var seeded []string
	for _, data := range demoDataSets {
		inserted, err := seedTable(ctx, db, data)
		if err != nil {
			log.WithError(err).Error("demo data not inserted")
			continue
		}
		if inserted {
			log.Infof("sample data inserted into %s", data.table)
			seeded = append(seeded, data.table)
		}
	}
	return seeded
}
