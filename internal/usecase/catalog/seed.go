package catalog

import (
	"time"

	"github.com/BruksfildServices01/garage-scheduler/internal/models"
)

// Seed is the catalog a fresh installation starts from.
type Seed struct {
	Categories []models.ServiceCategory
	Services   []models.Service
	Clients    []models.Client
}

func cat(id int64) *int64 { return &id }

func DefaultSeed() Seed {
	return Seed{
		Categories: []models.ServiceCategory{
			{ID: 1, Name: "Periodic Maintenance", Slug: "periodic-maintenance"},
			{ID: 2, Name: "Brakes", Slug: "brakes"},
			{ID: 3, Name: "Engine & Mechanical", Slug: "engine-mechanical"},
			{ID: 4, Name: "Fluids & Oils", Slug: "fluids-oils"},
			{ID: 5, Name: "Tyres & Wheels", Slug: "tyres-wheels"},
			{ID: 6, Name: "Electrical", Slug: "electrical"},
			{ID: 7, Name: "Air Conditioning", Slug: "air-conditioning"},
		},
		Services: []models.Service{
			{ID: 101, CategoryID: cat(1), Name: "Standard Service", Description: "Engine oil, oil filter, air filter and cabin filter.", Duration: 90, Price: 2500, RequiresParts: true},
			{ID: 102, CategoryID: cat(1), Name: "Major Service", Description: "Standard service plus timing belt, gearbox oil and full inspection.", Duration: 300, Price: 8000, RequiresParts: true},
			{ID: 103, CategoryID: cat(1), Name: "Winter Check", Description: "Antifreeze, tyres, battery and washer fluid.", Duration: 45, Price: 500},
			{ID: 104, CategoryID: cat(1), Name: "Pre-Inspection Check", Description: "General check ahead of the roadworthiness test.", Duration: 60, Price: 750},
			{ID: 201, CategoryID: cat(2), Name: "Front Brake Pads", Description: "Front pads and caliper check.", Duration: 60, Price: 1200, RequiresParts: true},
			{ID: 202, CategoryID: cat(2), Name: "Rear Brake Pads", Duration: 60, Price: 1000, RequiresParts: true},
			{ID: 203, CategoryID: cat(2), Name: "Front Brake Discs", Description: "Front discs and pads.", Duration: 90, Price: 3000, RequiresParts: true},
			{ID: 204, CategoryID: cat(2), Name: "Brake Fluid Change", Duration: 45, Price: 400, RequiresParts: true},
			{ID: 301, CategoryID: cat(3), Name: "Timing Kit", Description: "Timing belt or chain and water pump.", Duration: 240, Price: 6000, RequiresParts: true},
			{ID: 302, CategoryID: cat(3), Name: "Clutch Kit", Duration: 300, Price: 7000, RequiresParts: true},
			{ID: 303, CategoryID: cat(3), Name: "Spark Plugs", Duration: 45, Price: 800, RequiresParts: true},
			{ID: 304, CategoryID: cat(3), Name: "EGR Valve Cleaning", Duration: 120, Price: 1500},
			{ID: 401, CategoryID: cat(4), Name: "Oil Change", Description: "Oil only, filter not included.", Duration: 30, Price: 600, RequiresParts: true},
			{ID: 402, CategoryID: cat(4), Name: "Gearbox Oil Change", Duration: 60, Price: 1500, RequiresParts: true},
			{ID: 403, CategoryID: cat(4), Name: "Coolant Change", Duration: 45, Price: 500, RequiresParts: true},
			{ID: 501, CategoryID: cat(5), Name: "Tyre Swap (4 wheels)", Duration: 60, Price: 600},
			{ID: 502, CategoryID: cat(5), Name: "Wheel Alignment & Balancing", Duration: 45, Price: 500},
			{ID: 503, CategoryID: cat(5), Name: "Puncture Repair", Duration: 30, Price: 200},
			{ID: 601, CategoryID: cat(6), Name: "Battery Replacement", Duration: 20, Price: 3000, RequiresParts: true},
			{ID: 602, CategoryID: cat(6), Name: "Diagnostics", Description: "OBD scan and fault code readout.", Duration: 30, Price: 500},
			{ID: 603, CategoryID: cat(6), Name: "Bulb Replacement", Duration: 15, Price: 100, RequiresParts: true},
			{ID: 701, CategoryID: cat(7), Name: "A/C Regas", Duration: 45, Price: 1000, RequiresParts: true},
			{ID: 702, CategoryID: cat(7), Name: "A/C Disinfection", Duration: 30, Price: 500, RequiresParts: true},
		},
		Clients: []models.Client{
			{ID: 1, Name: "Elif Şahin", Phone: "555-0101", Notes: "Sensitive about brake feel.", LastVisit: date(2023, 10, 15)},
			{ID: 2, Name: "Mehmet Öztürk", Phone: "555-0102", Notes: "Usually comes in for the winter check.", LastVisit: date(2023, 11, 1)},
			{ID: 3, Name: "Zeynep Arslan", Phone: "555-0103", Notes: "Cares about the audio system.", LastVisit: date(2023, 9, 22)},
			{ID: 4, Name: "Ahmet Çelik", Phone: "555-0104", LastVisit: date(2023, 11, 10)},
		},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
