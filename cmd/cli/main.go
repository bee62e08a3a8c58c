package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "movimientos-cli",
		Short: "Monetary movements CLI tool",
		Long:  `A command line interface for interacting with the monetary movements API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	saldoCmd := &cobra.Command{
		Use:   "saldo [cliente-id]",
		Short: "Show the balance report for a client",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			showBalance(args[0])
		},
	}

	var (
		cuentaID string
		tipo     string
		importe  string
		fecha    string
	)

	movimientoCmd := &cobra.Command{
		Use:   "movimiento",
		Short: "Record a movement against an account",
		Run: func(cmd *cobra.Command, args []string) {
			recordMovement(cuentaID, tipo, importe, fecha)
		},
	}
	movimientoCmd.Flags().StringVar(&cuentaID, "cuenta", "", "Account ID")
	movimientoCmd.Flags().StringVar(&tipo, "tipo", "Ingreso", "Movement kind: Ingreso or Egreso")
	movimientoCmd.Flags().StringVar(&importe, "importe", "", "Amount, e.g. 100.50")
	movimientoCmd.Flags().StringVar(&fecha, "fecha", time.Now().Format("2006-01-02"), "Movement date (YYYY-MM-DD)")
	movimientoCmd.MarkFlagRequired("cuenta")
	movimientoCmd.MarkFlagRequired("importe")

	rootCmd.AddCommand(saldoCmd)
	rootCmd.AddCommand(movimientoCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func showBalance(clientID string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + "/api/v1/clientes/" + clientID + "/saldo")
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Balance report FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	if rows, ok := result["saldo_movimientos"].([]any); ok {
		for _, row := range rows {
			if m, ok := row.(map[string]any); ok {
				fmt.Printf("Cuenta: %v  Saldo: %v\n", m["cuenta_id"], m["saldo"])
			}
		}
	}

	if usd, ok := result["saldo_usd"]; ok && usd != nil {
		fmt.Printf("Saldo USD: %v\n", usd)
	} else {
		fmt.Println("Saldo USD: no disponible")
	}
}

func recordMovement(cuentaID, tipo, importe, fecha string) {
	payload, _ := json.Marshal(map[string]string{
		"cuenta_id": cuentaID,
		"tipo":      tipo,
		"importe":   importe,
		"fecha":     fecha,
	})

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+"/api/v1/movimientos", "application/json", bytes.NewReader(payload))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusCreated {
		fmt.Printf("Movement REJECTED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	fmt.Printf("Movement recorded\n%s\n", string(body))
}
