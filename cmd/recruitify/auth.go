package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mahmoud/recruitify/internal/config"
	"github.com/mahmoud/recruitify/internal/server"
	"github.com/mahmoud/recruitify/internal/session"
	"github.com/mahmoud/recruitify/internal/types"
)

var (
	authCompanyName string
	authEmail       string
	authPassword    string
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Register a new company",
	RunE:  runSignup,
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in as a company and save the session",
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the saved session",
	RunE:  runLogout,
}

func init() {
	signupCmd.Flags().StringVar(&authCompanyName, "name", "", "Company name (required)")
	signupCmd.Flags().StringVar(&authEmail, "email", "", "Company email (required)")
	signupCmd.Flags().StringVar(&authPassword, "password", "", "Password, at least 6 characters (required)")
	_ = signupCmd.MarkFlagRequired("name")
	_ = signupCmd.MarkFlagRequired("email")
	_ = signupCmd.MarkFlagRequired("password")

	loginCmd.Flags().StringVar(&authEmail, "email", "", "Company email (required)")
	loginCmd.Flags().StringVar(&authPassword, "password", "", "Password (required)")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(signupCmd, loginCmd, logoutCmd)
}

func companyService(cfg *config.Config) (*server.CompanyService, error) {
	st, err := openStore(cfg)
	if err != nil {
		return nil, err
	}
	passwords, err := config.NewPasswordConfig()
	if err != nil {
		return nil, err
	}
	return server.NewCompanyService(st, passwords), nil
}

func runSignup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	companies, err := companyService(cfg)
	if err != nil {
		return err
	}

	key, err := companies.Signup(context.Background(), types.SignupRequest{
		CompanyName: authCompanyName,
		Email:       authEmail,
		Password:    authPassword,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Company registered: %s\nYou can now log in.\n", key)
	return nil
}

func runLogin(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	companies, err := companyService(cfg)
	if err != nil {
		return err
	}

	company, err := companies.Login(context.Background(), types.LoginRequest{
		Email:    authEmail,
		Password: authPassword,
	})
	if err != nil {
		return err
	}

	if err := session.Save(cfg.SessionFile, session.Session{
		CompanyName: company.Company.CompanyName,
		Email:       authEmail,
		Password:    authPassword,
	}); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	fmt.Printf("Logged in as %s\n", company.Company.CompanyName)
	return nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := session.Clear(cfg.SessionFile); err != nil {
		return err
	}
	fmt.Println("Logged out")
	return nil
}
