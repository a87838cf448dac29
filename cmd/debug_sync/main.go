package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"dirsync/core/config"
	"dirsync/core/directory"
	"dirsync/core/inventory"
	"dirsync/core/reconcile"
	"dirsync/core/utils"

	"go.uber.org/zap"
)

// Read-only snapshot of both sides. Requires a complete .env; nothing is prompted.
func main() {
	// Load config
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}
	cfg.Directory.Server = utils.NormalizeServerURL(cfg.Directory.Server)
	if cfg.Directory.Account == "" {
		cfg.Directory.Account, _ = utils.DeriveAccountName(cfg.Inventory.Username)
	}
	if cfg.Directory.Password == "" {
		cfg.Directory.Password = cfg.Inventory.Password
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	l := zap.NewNop()
	ctx := context.Background()

	// Test 1: Directory
	fmt.Println("=== TEST 1: Directory ===")
	dir, err := directory.Connect(cfg.Directory, l)
	if err != nil {
		log.Fatal(err)
	}
	members, err := dir.ListMembers(ctx, "")
	_ = dir.Close()
	if err != nil {
		log.Fatal(err)
	}
	departments, buildings := directory.ExtractNames(members, l)
	fmt.Printf("Members under %s: %d\n", cfg.Directory.BaseOU, len(members))
	fmt.Printf("Departments: %d, buildings: %d\n", departments.Len(), buildings.Len())

	missingDept, missingBldg := 0, 0
	for _, m := range members {
		if _, ok := m.First(directory.AttrDepartment); !ok {
			missingDept++
		}
		if _, ok := m.First(directory.AttrBuilding); !ok {
			missingBldg++
		}
	}
	fmt.Printf("Members without %s: %d, without %s: %d\n",
		directory.AttrDepartment, missingDept, directory.AttrBuilding, missingBldg)

	// Test 2: Inventory
	fmt.Println("\n=== TEST 2: Inventory ===")
	inv := inventory.NewClient(cfg.Inventory, io.Discard, l)
	invDepartments, err := inv.ListDepartments(ctx)
	if err != nil {
		log.Fatal(err)
	}
	invBuildings, err := inv.ListBuildings(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Departments: %d, buildings: %d\n", len(invDepartments), len(invBuildings))

	// Test 3: Diff
	fmt.Println("\n=== TEST 3: Diff ===")
	deptDiff := reconcile.ComputeDiff(departments.Values(), invDepartments)
	bldgDiff := reconcile.ComputeDiff(buildings.Values(), invBuildings)
	fmt.Printf("department: create=%d delete=%d\n", len(deptDiff.ToCreate), len(deptDiff.ToDelete))
	fmt.Printf("building: create=%d delete=%d\n", len(bldgDiff.ToCreate), len(bldgDiff.ToDelete))

	// Save detailed output
	output := map[string]interface{}{
		"directory_members": len(members),
		"department":        deptDiff,
		"building":          bldgDiff,
	}
	data, _ := json.MarshalIndent(output, "", "  ")
	if err := os.WriteFile("debug_sync.json", data, 0644); err != nil {
		log.Fatal(err)
	}

	fmt.Println("\nDebug complete. Check debug_sync.json for details.")
}
