package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"medequip-support-be/internal/model"
	"medequip-support-be/internal/repository/implementation"
	"medequip-support-be/pkg/database"
	"medequip-support-be/pkg/embedding"
	"medequip-support-be/pkg/rag/knowledge"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// 3. Pre-Migration: Extensions (GORM AutoMigrate does not create these)
	log.Println("Step 1: Setting up Extensions...")
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS vector;`).Error; err != nil {
		log.Printf("Warn: Failed to create vector extension: %v. Continuing...", err)
	}

	// 4. AutoMigrate All Models
	log.Println("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.Client{},
		&model.Product{},
		&model.EquipmentRegistry{},
		&model.Part{},
		&model.Order{},
		&model.OrderItem{},
		&model.Shipment{},
		&model.Warranty{},
		&model.AmcContract{},
		&model.SupportTicket{},
		&model.TicketHistory{},
		&model.Invoice{},
		&model.Payment{},
		&model.KnowledgeEmbedding{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Seed deterministic demo data
	log.Println("Step 3: Seeding demo data...")
	if err := seedDemoData(db); err != nil {
		log.Fatalf("Error: Seeding failed: %v", err)
	}

	// 6. Optionally seed the knowledge base (requires a running Ollama)
	if os.Getenv("SEED_KNOWLEDGE") == "true" {
		log.Println("Step 4: Seeding knowledge base embeddings...")
		if err := seedKnowledge(db); err != nil {
			log.Fatalf("Error: Knowledge seeding failed: %v", err)
		}
	} else {
		log.Println("Step 4: Skipping knowledge base (set SEED_KNOWLEDGE=true to enable)")
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}

// seedDemoData inserts the baseline records the demo scenarios rely on. All
// inserts ignore conflicts on the business key so the command is idempotent.
func seedDemoData(db *gorm.DB) error {
	insert := func(column string, value interface{}) error {
		return db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: column}},
			DoNothing: true,
		}).Create(value).Error
	}

	clients := []model.Client{
		{ClientId: "ME-10001", Name: "City General Hospital", Email: "contact@cityhospital.com", ClientType: "Hospital", City: "Metropolis", Country: "USA"},
		{ClientId: "ME-10002", Name: "Lakeside Diagnostic Clinic", Email: "admin@lakesideclinic.org", ClientType: "Clinic", City: "Lakeside", Country: "USA"},
		{ClientId: "ME-10003", Name: "Northfield Research Laboratory", Email: "lab@northfieldresearch.com", ClientType: "Laboratory", City: "Northfield", Country: "Canada"},
		{ClientId: "ME-10004", Name: "Harborview Imaging Center", Email: "office@harborviewimaging.com", ClientType: "Imaging Center", City: "Harborview", Country: "USA"},
	}
	for i := range clients {
		if err := insert("client_id", &clients[i]); err != nil {
			return err
		}
	}

	products := []model.Product{
		{Sku: "MRI-3000", Model: "MRI-3000", Category: "Imaging", Name: "MRI Scanner 3000", Description: "High-field MRI scanner.", PowerRequirements: "220-240V, 50/60Hz", Specifications: []byte(`{"field_strength":"3T","bore":"70cm"}`)},
		{Sku: "CT-4000", Model: "CT-4000", Category: "Imaging", Name: "CT Scanner 4000", Description: "Multi-slice CT scanner.", PowerRequirements: "400V, 3-phase", Specifications: []byte(`{"slice_count":128,"gantry":"78cm"}`)},
		{Sku: "PM-800", Model: "PM-800", Category: "Patient Monitor", Name: "Patient Monitor PM-800", Description: "Bedside patient monitor.", PowerRequirements: "100-240V AC", Specifications: []byte(`{"channels":["SpO2","NIBP","ECG","TEMP"]}`)},
	}
	for i := range products {
		if err := insert("sku", &products[i]); err != nil {
			return err
		}
	}

	productIDs := map[string]uint{}
	var all []model.Product
	if err := db.Find(&all).Error; err != nil {
		return err
	}
	for _, p := range all {
		productIDs[p.Sku] = p.Id
	}

	registry := []model.EquipmentRegistry{
		{SerialNumber: "US-2022-1234", ClientId: "ME-10001", ProductId: productIDs["PM-800"], InstallDate: "2022-06-15", Status: "Active"},
		{SerialNumber: "CT-2023-4000", ClientId: "ME-10001", ProductId: productIDs["CT-4000"], InstallDate: "2023-01-20", Status: "Active"},
	}
	for i := range registry {
		if err := insert("serial_number", &registry[i]); err != nil {
			return err
		}
	}

	if err := insert("order_id", &model.Order{
		OrderId: "ORD-2024-0001", ClientId: "ME-10001", OrderDate: "2024-03-01", Status: "Shipped", TotalAmount: 250000.0,
	}); err != nil {
		return err
	}
	if err := insert("shipment_id", &model.Shipment{
		ShipmentId: "SHP-2024-0001", OrderId: "ORD-2024-0001", Carrier: "MedEquip Logistics",
		TrackingNumber: "TRK123456789", ShippedDate: "2024-03-02", ExpectedDeliveryDate: "2024-03-10", DeliveryStatus: "In Transit",
	}); err != nil {
		return err
	}

	if err := insert("warranty_id", &model.Warranty{
		WarrantyId: "WAR-2022-0001", SerialNumber: "US-2022-1234", StartDate: "2022-06-15", EndDate: "2025-06-14", CoverageLevel: "Standard",
	}); err != nil {
		return err
	}
	if err := insert("amc_id", &model.AmcContract{
		AmcId: "AMC-2023-0001", SerialNumber: "CT-2023-4000", Tier: "Gold", StartDate: "2023-02-01", EndDate: "2026-01-31",
	}); err != nil {
		return err
	}

	if err := insert("ticket_id", &model.SupportTicket{
		TicketId: "TKT-2024-0001", ClientId: "ME-10001", SerialNumber: "US-2022-1234",
		Category: "Device Failure", Severity: "High", Status: "Open",
	}); err != nil {
		return err
	}
	history := []model.TicketHistory{
		{TicketId: "TKT-2024-0001", EventTime: "2024-02-01T09:15:00", Status: "Open", Notes: "Ticket created by customer portal"},
		{TicketId: "TKT-2024-0001", EventTime: "2024-02-01T10:00:00", Status: "In Progress", Notes: "Technician assigned"},
		{TicketId: "TKT-2024-0001", EventTime: "2024-02-02T14:30:00", Status: "Open", Notes: "Awaiting spare part"},
	}
	for i := range history {
		var count int64
		db.Model(&model.TicketHistory{}).
			Where("ticket_id = ? AND event_time = ?", history[i].TicketId, history[i].EventTime).
			Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&history[i]).Error; err != nil {
			return err
		}
	}

	if err := insert("invoice_id", &model.Invoice{
		InvoiceId: "INV-2024-3456", ClientId: "ME-10001", OrderId: "ORD-2024-0001",
		Amount: 250000.0, IssueDate: "2024-03-05", DueDate: "2024-04-05", Status: "Paid",
	}); err != nil {
		return err
	}
	if err := insert("payment_id", &model.Payment{
		PaymentId: "PAY-2024-0001", InvoiceId: "INV-2024-3456", Amount: 250000.0,
		PaymentDate: "2024-03-20", Method: "Wire Transfer", Status: "Completed",
	}); err != nil {
		return err
	}

	parts := []model.Part{
		{PartNumber: "ECG-ELECT-001", Name: "ECG Electrodes", Description: "Disposable ECG electrodes", StockQuantity: 500, UnitPrice: 2.5},
		{PartNumber: "VENT-FILTER-010", Name: "Ventilator Filter", Description: "Bacterial/viral filter for ventilators", StockQuantity: 120, UnitPrice: 45.0},
	}
	for i := range parts {
		if err := insert("part_number", &parts[i]); err != nil {
			return err
		}
	}

	return nil
}

func seedKnowledge(db *gorm.DB) error {
	baseURL := os.Getenv("OLLAMA_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	embedModel := os.Getenv("OLLAMA_EMBED_MODEL")
	if embedModel == "" {
		embedModel = "nomic-embed-text"
	}

	provider := embedding.NewOllamaProvider(baseURL, embedModel)
	seeder := knowledge.NewSeeder(provider, implementation.NewKnowledgeRepository(db))
	return seeder.SeedCore(context.Background())
}
