package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/configs"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/entity"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/repository"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const usage = "expected 'add-admin' or 'orders' subcommand"

func main() {
	addAdminCmd := flag.NewFlagSet("add-admin", flag.ExitOnError)
	name := addAdminCmd.String("name", "", "Full name of the admin")
	email := addAdminCmd.String("email", "", "Email for the new admin")
	phone := addAdminCmd.String("phone", "", "Phone number for the new admin")
	password := addAdminCmd.String("password", "", "Password for the new admin")

	ordersCmd := flag.NewFlagSet("orders", flag.ExitOnError)
	limit := ordersCmd.Int("limit", 20, "How many recent orders to show")

	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "add-admin":
		addAdminCmd.Parse(os.Args[2:])
		if *name == "" || *email == "" || *phone == "" || *password == "" {
			fmt.Println("name, email, phone and password are required")
			addAdminCmd.PrintDefaults()
			os.Exit(1)
		}
		db := openDB()
		if err := createAdmin(db, *name, *email, *phone, *password); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create admin: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Admin '%s' created successfully.\n", *email)
	case "orders":
		ordersCmd.Parse(os.Args[2:])
		if err := printOrders(openDB(), *limit); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to list orders: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Println(usage)
		os.Exit(1)
	}
}

// openDB uses the same env as the server and makes sure the schema exists.
func openDB() *gorm.DB {
	cfg := configs.LoadConfig()
	db, err := configs.OpenDB(cfg.DBDriver, cfg.DBSource)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	if err := configs.SetupDatabase(db); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init schema: %v\n", err)
		os.Exit(1)
	}
	return db
}

func createAdmin(db *gorm.DB, name, email, phone, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	admin := &entity.User{
		FullName:    strings.TrimSpace(name),
		Email:       strings.ToLower(strings.TrimSpace(email)),
		PhoneNumber: strings.TrimSpace(phone),
		Password:    string(hashed),
		Role:        entity.RoleAdmin,
	}
	return repository.NewUserRepository(db).Create(context.Background(), admin)
}

func printOrders(db *gorm.DB, limit int) error {
	rows, err := repository.NewOrderRepository(db).RecentRows(context.Background(), limit)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Order", "Buyer", "Status", "Payment", "Total", "Placed")
	for _, r := range rows {
		if err := table.Append([]string{
			"ORD-" + strconv.FormatInt(r.OrderNumber, 10),
			r.Buyer,
			string(r.Status),
			string(r.Method),
			r.Total,
			r.CreatedAt,
		}); err != nil {
			return err
		}
	}
	return table.Render()
}
