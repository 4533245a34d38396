package cmd

import (
	"fmt"
	"log"
	"net/http"

	"github.com/masnyjimmy/reqdoc/swagger"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the compiled document with Swagger UI and reload on changes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		input, _ := cmd.Flags().GetString("input")
		addr, _ := cmd.Flags().GetString("addr")
		baseUrl, _ := cmd.Flags().GetString("base-url")
		origins, _ := cmd.Flags().GetStringSlice("cors-origin")
		debounce, _ := cmd.Flags().GetDuration("debounce")

		opt := swagger.DefaultOptions()
		opt.BaseUrl = baseUrl
		opt.AllowedOrigins = origins
		opt.DebounceTime = debounce

		return Serve(input, addr, opt)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":8080", "Listen address")
	serveCmd.Flags().String("base-url", "/", "Path prefix of the documentation endpoints")
	serveCmd.Flags().StringSlice("cors-origin", nil, "Origins allowed to fetch the document (repeatable)")
	serveCmd.Flags().Duration("debounce", swagger.DEFAULT_DEBOUNCE_TIME, "Delay before recompiling after a file change")
}

func readAPI(input string) ([]byte, error) {
	return compileBytes(input, ".json")
}

// watch recompiles input on every change and publishes the result. Failed
// compilations are logged and keep the previous document.
func watch(input string, watcher *swagger.Watcher, handler *swagger.Swagger) {
	for err := range watcher.Update {
		if err != nil {
			errorLogger.Print(err)
			continue
		}

		bytes, err := readAPI(input)
		if err != nil {
			errorLogger.Printf("Unable to update api: %v", err)
			continue
		}

		handler.SetDocument(bytes)
		log.Print("Document reloaded")
	}
}

func Serve(input, addr string, opt swagger.Options) error {
	document, err := readAPI(input)
	if err != nil {
		return err
	}

	swaggerHandler := swagger.New(document, opt)

	watcher, err := swagger.WatchFile(input, opt.DebounceTime)
	if err != nil {
		log.Printf("Unable to watch for file updates: %v", err)
	} else {
		defer watcher.Close()
		go watch(input, watcher, swaggerHandler)
	}

	log.Printf("Started server at http://%v%v", displayAddr(addr), opt.BaseUrl)

	if err := http.ListenAndServe(addr, swaggerHandler.Handler(nil)); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}

func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
