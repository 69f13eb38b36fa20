package main

import (
	"database/sql"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/LuisGuzman07/backend-smart/internal/shared/config"
)

func main() {
	var productosCSV string
	var demo bool

	flag.StringVar(&productosCSV, "productos", "", "CSV file with products to import")
	flag.BoolVar(&demo, "demo", false, "Create demo clients and sales")
	flag.Parse()

	cfg := config.LoadConfig()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("❌ Failed to ping database: %v", err)
	}
	log.Println("✅ Database connected!")

	if productosCSV != "" {
		if err := importProducts(db, productosCSV); err != nil {
			log.Fatalf("❌ Product import failed: %v", err)
		}
	}

	if demo {
		if err := seedDemo(db); err != nil {
			log.Fatalf("❌ Demo seed failed: %v", err)
		}
	}

	if productosCSV == "" && !demo {
		log.Println("⚠️ Nothing to do: pass -productos <file.csv> and/or -demo")
	}
}

// importProducts loads a product CSV (comment lines start with #) and
// inserts categories and products, skipping existing product codes.
func importProducts(db *sql.DB, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open CSV: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comment = '#'

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("failed to read CSV header: %w", err)
	}
	col := map[string]int{}
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"codigo", "nombre", "precio_compra", "precio_venta", "stock", "categoria"} {
		if _, ok := col[required]; !ok {
			return fmt.Errorf("CSV is missing column %q", required)
		}
	}

	imported, skipped := 0, 0
	for {
		row, err := reader.Read()
		if err != nil {
			break
		}

		get := func(name string) string {
			if idx, ok := col[name]; ok && idx < len(row) {
				return strings.TrimSpace(row[idx])
			}
			return ""
		}

		var categoriaID int64
		err = db.QueryRow(
			`INSERT INTO categorias (nombre) VALUES ($1)
			 ON CONFLICT (nombre) DO NOTHING RETURNING id`, get("categoria"),
		).Scan(&categoriaID)
		if err == sql.ErrNoRows {
			err = db.QueryRow(`SELECT id FROM categorias WHERE nombre = $1`, get("categoria")).Scan(&categoriaID)
		}
		if err != nil {
			return fmt.Errorf("failed to resolve category %q: %w", get("categoria"), err)
		}

		stock, _ := strconv.Atoi(get("stock"))
		res, err := db.Exec(
			`INSERT INTO productos (codigo, nombre, descripcion, precio_compra, precio_venta, costo_promedio, stock, categoria_id)
			 VALUES ($1, $2, $3, $4, $5, NULLIF($6, '')::double precision, $7, $8)
			 ON CONFLICT (codigo) DO NOTHING`,
			get("codigo"), get("nombre"), get("descripcion"),
			get("precio_compra"), get("precio_venta"), get("costo_promedio"),
			stock, categoriaID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert product %q: %w", get("codigo"), err)
		}

		if n, _ := res.RowsAffected(); n > 0 {
			imported++
			log.Printf("✅ Producto importado: %s", get("nombre"))
		} else {
			skipped++
			log.Printf("⚠️ Producto existente: %s", get("nombre"))
		}
	}

	log.Printf("✅ Import finished: %d imported, %d skipped", imported, skipped)
	return nil
}

var demoClientes = []struct {
	nombre, apellido, ci, telefono, sexo string
}{
	{"Juan", "Pérez", "1234567", "70012345", "M"},
	{"María", "García", "2345678", "70123456", "F"},
	{"Carlos", "López", "3456789", "70234567", "M"},
	{"Ana", "Martínez", "4567890", "70345678", "F"},
	{"Luis", "Rodríguez", "5678901", "70456789", "M"},
}

// seedDemo creates a handful of clients and paid sales with random dates
// over the last two months, enough to exercise every report.
func seedDemo(db *sql.DB) error {
	for _, c := range demoClientes {
		_, err := db.Exec(
			`INSERT INTO clientes (nombre, apellido, ci, telefono, sexo, estado)
			 VALUES ($1, $2, $3, $4, $5, 'activo')
			 ON CONFLICT (ci) DO NOTHING`,
			c.nombre, c.apellido, c.ci, c.telefono, c.sexo,
		)
		if err != nil {
			return fmt.Errorf("failed to insert client %s: %w", c.ci, err)
		}
	}
	log.Printf("✅ %d demo clients ensured", len(demoClientes))

	rows, err := db.Query(`SELECT id, precio_venta FROM productos ORDER BY id LIMIT 50`)
	if err != nil {
		return fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	type producto struct {
		id     int64
		precio float64
	}
	var productos []producto
	for rows.Next() {
		var p producto
		if err := rows.Scan(&p.id, &p.precio); err != nil {
			return err
		}
		productos = append(productos, p)
	}
	if len(productos) == 0 {
		return fmt.Errorf("no products in database, import products first")
	}

	clienteRows, err := db.Query(`SELECT id FROM clientes`)
	if err != nil {
		return fmt.Errorf("failed to list clients: %w", err)
	}
	defer clienteRows.Close()

	var clientes []int64
	for clienteRows.Next() {
		var id int64
		if err := clienteRows.Scan(&id); err != nil {
			return err
		}
		clientes = append(clientes, id)
	}

	to := time.Now()
	from := to.AddDate(0, -2, 0)
	estados := []string{"pagada", "pagada", "pagada", "pendiente", "anulada"}

	created := 0
	for i := 0; i < 40; i++ {
		fecha := from.Add(time.Duration(rand.Int63n(int64(to.Sub(from)))))
		comprobante := fmt.Sprintf("NV-%d", time.Now().UnixMicro()+int64(i))
		clienteID := clientes[rand.Intn(len(clientes))]
		estado := estados[rand.Intn(len(estados))]

		tx, err := db.Begin()
		if err != nil {
			return err
		}

		var notaID int64
		err = tx.QueryRow(
			`INSERT INTO notas_venta (numero_comprobante, fecha, estado, cliente_id)
			 VALUES ($1, $2, $3, $4) RETURNING id`,
			comprobante, fecha, estado, clienteID,
		).Scan(&notaID)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert sale: %w", err)
		}

		total := 0.0
		for j := 0; j < 1+rand.Intn(3); j++ {
			p := productos[rand.Intn(len(productos))]
			cantidad := 1 + rand.Intn(5)
			subtotal := float64(cantidad) * p.precio

			_, err = tx.Exec(
				`INSERT INTO detalles_nota_venta (cantidad, subtotal, total, nota_venta_id, producto_id)
				 VALUES ($1, $2, $3, $4, $5)`,
				cantidad, subtotal, subtotal, notaID, p.id,
			)
			if err != nil {
				tx.Rollback()
				return fmt.Errorf("failed to insert sale detail: %w", err)
			}
			total += subtotal
		}

		_, err = tx.Exec(`UPDATE notas_venta SET subtotal = $1, total = $1 WHERE id = $2`, total, notaID)
		if err != nil {
			tx.Rollback()
			return err
		}

		if err := tx.Commit(); err != nil {
			return err
		}
		created++
	}

	log.Printf("✅ %d demo sales created", created)
	return nil
}
