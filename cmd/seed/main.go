// Command seed loads sample materials, stock, and projects into the database.
// Usage: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"solarops/internal/config"
	"solarops/internal/domain"
	"solarops/internal/repository/postgres"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	materialRepo := postgres.NewMaterialRepo(db)
	stockRepo := postgres.NewStockRepo(db)
	projectRepo := postgres.NewProjectRepo(db)

	log.Println("creating sample materials...")
	for i := range sampleMaterials {
		m := &sampleMaterials[i]
		if err := materialRepo.Create(ctx, m); err != nil {
			return fmt.Errorf("create material %s: %w", m.SKU, err)
		}
		if err := stockRepo.CreateForMaterial(ctx, m.ID, domain.DefaultLocation); err != nil {
			return fmt.Errorf("create stock for %s: %w", m.SKU, err)
		}

		// Panels, inverters, and batteries start at 1.5x min stock, the
		// rest at 2x.
		factor := 2.0
		switch m.Category {
		case domain.CategoryPanel, domain.CategoryInverter, domain.CategoryBattery:
			factor = 1.5
		}
		stock, err := stockRepo.GetByMaterial(ctx, m.ID)
		if err != nil {
			return fmt.Errorf("load stock for %s: %w", m.SKU, err)
		}
		stock.Quantity = m.MinStock * factor
		if err := stockRepo.UpdateQuantity(ctx, stock); err != nil {
			return fmt.Errorf("set stock for %s: %w", m.SKU, err)
		}
	}

	log.Println("creating sample projects...")
	for i := range sampleProjects {
		if err := projectRepo.Create(ctx, &sampleProjects[i]); err != nil {
			return fmt.Errorf("create project %s: %w", sampleProjects[i].Name, err)
		}
	}

	log.Printf("sample data created: %d materials, %d projects", len(sampleMaterials), len(sampleProjects))
	return nil
}

var sampleMaterials = []domain.Material{
	{Name: "Solar Panel 450W Monocrystalline", SKU: "PANEL-450W-MONO", Description: "High efficiency 450W monocrystalline solar panel", Category: domain.CategoryPanel, Unit: "buc", UnitPrice: 850.00, MinStock: 20},
	{Name: "Solar Panel 550W Bifacial", SKU: "PANEL-550W-BIFA", Description: "Bifacial 550W solar panel with enhanced performance", Category: domain.CategoryPanel, Unit: "buc", UnitPrice: 1100.00, MinStock: 15},
	{Name: "Inverter 5kW Hybrid", SKU: "INV-5KW-HYB", Description: "5kW hybrid inverter with battery backup support", Category: domain.CategoryInverter, Unit: "buc", UnitPrice: 3500.00, MinStock: 5},
	{Name: "Inverter 10kW Three Phase", SKU: "INV-10KW-3PH", Description: "10kW three phase grid-tie inverter", Category: domain.CategoryInverter, Unit: "buc", UnitPrice: 5500.00, MinStock: 3},
	{Name: "Battery Storage 10kWh LiFePO4", SKU: "BAT-10KWH-LIFEPO4", Description: "10kWh LiFePO4 battery storage system", Category: domain.CategoryBattery, Unit: "buc", UnitPrice: 8000.00, MinStock: 5},
	{Name: "Battery Storage 15kWh LiFePO4", SKU: "BAT-15KWH-LIFEPO4", Description: "15kWh LiFePO4 battery storage system", Category: domain.CategoryBattery, Unit: "buc", UnitPrice: 11500.00, MinStock: 3},
	{Name: "Solar Cable 6mm2 Black", SKU: "CABLE-6MM-BLK", Description: "6mm2 solar cable, black, UV resistant", Category: domain.CategoryCable, Unit: "m", UnitPrice: 12.50, MinStock: 500},
	{Name: "Solar Cable 4mm2 Red", SKU: "CABLE-4MM-RED", Description: "4mm2 solar cable, red, UV resistant", Category: domain.CategoryCable, Unit: "m", UnitPrice: 10.00, MinStock: 500},
	{Name: "Roof Mounting System - Tiled Roof", SKU: "MOUNT-TILE-KIT", Description: "Complete mounting system for tiled roofs", Category: domain.CategoryMounting, Unit: "set", UnitPrice: 450.00, MinStock: 10},
	{Name: "Roof Mounting System - Metal Roof", SKU: "MOUNT-METAL-KIT", Description: "Complete mounting system for metal roofs", Category: domain.CategoryMounting, Unit: "set", UnitPrice: 400.00, MinStock: 10},
	{Name: "MC4 Connectors Pair", SKU: "CONN-MC4-PAIR", Description: "MC4 connector pair (male + female)", Category: domain.CategoryOther, Unit: "pair", UnitPrice: 8.50, MinStock: 100},
	{Name: "Junction Box IP65", SKU: "JBOX-IP65", Description: "Waterproof junction box IP65 rated", Category: domain.CategoryOther, Unit: "buc", UnitPrice: 85.00, MinStock: 20},
	{Name: "AC Protection Box", SKU: "ACBOX-PROT", Description: "AC protection box with circuit breakers", Category: domain.CategoryOther, Unit: "buc", UnitPrice: 250.00, MinStock: 15},
	{Name: "DC Protection Box", SKU: "DCBOX-PROT", Description: "DC protection box with surge protection", Category: domain.CategoryOther, Unit: "buc", UnitPrice: 180.00, MinStock: 15},
	{Name: "Grounding Kit", SKU: "GROUND-KIT", Description: "Complete grounding kit for solar installation", Category: domain.CategoryOther, Unit: "set", UnitPrice: 120.00, MinStock: 20},
}

var sampleProjects = []domain.Project{
	{
		Name:          "Residential Installation - Popescu Family",
		ClientName:    "Popescu Ion",
		ClientContact: "+40 723 456 789",
		Location:      "Bucharest, Sector 3",
		CapacityKW:    f64(6.3),
		Status:        domain.ProjectInProgress,
		StartDate:     day(2024, time.January, 15),
		EstimatedCost: f64(25000.00),
		Notes:         "14 panels, 5kW hybrid inverter, 10kWh battery",
	},
	{
		Name:          "Commercial Installation - Tech Office",
		ClientName:    "TechCorp SRL",
		ClientContact: "+40 721 123 456",
		Location:      "Cluj-Napoca",
		CapacityKW:    f64(22.0),
		Status:        domain.ProjectPlanned,
		StartDate:     day(2024, time.February, 1),
		EstimatedCost: f64(85000.00),
		Notes:         "40 panels, 10kW three-phase inverter, no battery",
	},
	{
		Name:          "Farm Installation - Green Energy Farm",
		ClientName:    "Agro Green SRL",
		ClientContact: "+40 745 987 654",
		Location:      "Timisoara",
		CapacityKW:    f64(33.0),
		Status:        domain.ProjectPlanned,
		StartDate:     day(2024, time.March, 1),
		EstimatedCost: f64(120000.00),
		Notes:         "60 panels, 15kWh battery storage, ground mounting",
	},
	{
		Name:          "Residential Installation - Ionescu Villa",
		ClientName:    "Ionescu Maria",
		ClientContact: "+40 732 111 222",
		Location:      "Brasov",
		CapacityKW:    f64(8.8),
		Status:        domain.ProjectCompleted,
		StartDate:     day(2023, time.November, 1),
		EndDate:       day(2023, time.November, 20),
		EstimatedCost: f64(35000.00),
		ActualCost:    f64(34500.00),
		Notes:         "20 panels, 5kW hybrid inverter, 10kWh battery",
	},
}

func f64(v float64) *float64 { return &v }

func day(year int, month time.Month, d int) *time.Time {
	t := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
	return &t
}
