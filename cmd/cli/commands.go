package main

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	uploadCategory     int
	uploadName         string
	uploadTournamentID string
	uploadDryRun       bool
	playerGender       string
)

func init() {
	uploadCmd.Flags().IntVar(&uploadCategory, "category", 1, "Tournament category (1 federal, 2 regional)")
	uploadCmd.Flags().StringVar(&uploadName, "name", "", "Tournament name")
	uploadCmd.Flags().StringVar(&uploadTournamentID, "tournament-id", "", "Replace the results of an existing tournament")
	uploadCmd.Flags().BoolVar(&uploadDryRun, "dry-run", false, "Parse and score without storing")
	addPlayerCmd.Flags().StringVar(&playerGender, "gender", "", "Player gender")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(addPlayerCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(resultsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the players in the roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/players")
	},
}

var addPlayerCmd = &cobra.Command{
	Use:   "add-player <name>",
	Short: "Add a player to the roster",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := fmt.Sprintf(`{"name":%q,"gender":%q}`, args[0], playerGender)
		return performRequest(http.MethodPost, "/players", "application/json", bytes.NewBufferString(body))
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

var resultsCmd = &cobra.Command{
	Use:   "results <tournament-id>",
	Short: "Show the stored results of a tournament",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/tournaments/results?tournament_id=" + url.QueryEscape(args[0]))
	},
}

var uploadCmd = &cobra.Command{
	Use:   "upload <file.xlsx>",
	Short: "Upload a tournament results workbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read workbook: %w", err)
		}

		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		fields := map[string]string{
			"category":      strconv.Itoa(uploadCategory),
			"name":          uploadName,
			"tournament_id": uploadTournamentID,
		}
		for k, v := range fields {
			if err := mw.WriteField(k, v); err != nil {
				return fmt.Errorf("failed to write form field %s: %w", k, err)
			}
		}
		fw, err := mw.CreateFormFile("file", filepath.Base(args[0]))
		if err != nil {
			return fmt.Errorf("failed to create form file: %w", err)
		}
		if _, err := fw.Write(data); err != nil {
			return fmt.Errorf("failed to write form file: %w", err)
		}
		if err := mw.Close(); err != nil {
			return fmt.Errorf("failed to finish form: %w", err)
		}

		endpoint := "/tournaments/results"
		if uploadDryRun {
			endpoint += "?dry_run=true"
		}
		return performRequest(http.MethodPost, endpoint, mw.FormDataContentType(), &body)
	},
}

func performGetRequest(endpoint string) error {
	return performRequest(http.MethodGet, endpoint, "", nil)
}

func performRequest(method, endpoint, contentType string, reqBody io.Reader) error {
	target := host + endpoint
	fmt.Printf("Making %s request to %s\n", method, target)

	req, err := http.NewRequest(method, target, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
