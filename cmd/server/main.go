package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"studydash/internal/api"
	"studydash/internal/config"
	"studydash/internal/llm"
	"studydash/internal/materials"
	"studydash/internal/storage"
)

func main() {
	log.SetFlags(log.Ltime | log.Lmsgprefix)
	log.SetPrefix("")

	log.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	log.Println("🎓 STUDYDASH - Start")
	log.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	// Kommandozeilen-Flags
	configPath := flag.String("config", "config.json", "Pfad zur Konfigurationsdatei")
	port := flag.String("port", "", "Server-Port (überschreibt Konfiguration)")
	flag.Parse()

	// Konfiguration laden
	log.Println("📋 Lade Konfiguration...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("⚠️  Konnte Konfiguration nicht laden, verwende Standardwerte: %v", err)
	}
	if *port != "" {
		cfg.ServerPort = *port
	}
	log.Printf("   ✓ Konfiguration geladen")

	// Verzeichnisse anlegen
	for _, dir := range []string{cfg.DataDir, cfg.MaterialsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("❌ Verzeichnis %s konnte nicht angelegt werden: %v", dir, err)
		}
	}

	// Storage initialisieren
	log.Println("💾 Initialisiere Datenbank...")
	store, err := storage.NewSQLiteStorage(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("❌ Fehler beim Initialisieren der Datenbank: %v", err)
	}
	defer store.Close()
	log.Printf("   ✓ Datenbank: %s", cfg.DatabasePath)

	// Alte progress.json übernehmen, danach fehlende Stammdaten einspielen
	if err := store.MigrateFromJSON(filepath.Join(cfg.DataDir, "progress.json")); err != nil {
		log.Fatalf("❌ Migration fehlgeschlagen: %v", err)
	}
	if err := store.Seed(); err != nil {
		log.Fatalf("❌ Stammdaten konnten nicht eingespielt werden: %v", err)
	}

	// AI-Provider initialisieren
	log.Println("🤖 Initialisiere AI-Provider...")
	provider := llm.NewChatCompletionProvider(cfg.AIBaseURL, cfg.AIKey, cfg.AIModel, cfg.AIAPIVersion)
	if provider.IsConfigured() {
		log.Printf("   ✓ Modell: %s (api-version %s)", cfg.AIModel, cfg.AIAPIVersion)
	} else {
		log.Println("   ⚠️  Keine AI-Zugangsdaten gefunden")
		log.Println("      Setze STUDYDASH_AI_KEY und STUDYDASH_AI_BASE_URL")
	}

	// API-Handler und Router erstellen
	files := materials.NewManager(cfg.MaterialsDir, store)
	handler := api.NewHandler(store, provider, files, cfg)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	// Graceful Shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		log.Println("")
		log.Println("⏹️  Server wird heruntergefahren...")
		server.Close()
	}()

	log.Println("")
	log.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	log.Printf("✅ Server läuft auf: http://localhost:%s", cfg.ServerPort)
	log.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	log.Println("📚 Materials-Ordner:", cfg.MaterialsDir)
	log.Println("💡 Drücke Strg+C zum Beenden")
	log.Println("")

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server-Fehler: %v", err)
	}
}
