package main

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/appengine-ltd/trailbound/config"
	"github.com/appengine-ltd/trailbound/internal/game"
	"github.com/appengine-ltd/trailbound/internal/parser"
	"github.com/appengine-ltd/trailbound/internal/savestore"
	"github.com/appengine-ltd/trailbound/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if len(os.Args) > 1 && os.Args[1] == "serve" {
		if err := runServer(cfg, logger); err != nil {
			logger.Fatal("server failed", zap.Error(err))
		}
		return
	}

	if err := runREPL(cfg, logger); err != nil {
		logger.Fatal("session failed", zap.Error(err))
	}
}

func buildLogger(cfg config.Config) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.Debug {
		zcfg = zap.NewDevelopmentConfig()
	}
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}

func runServer(cfg config.Config, logger *zap.Logger) error {
	store, err := savestore.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	catalog, err := game.NewCatalog(game.BuiltinEncounters())
	if err != nil {
		return err
	}

	srv := server.New(logger, store, catalog, game.DefaultPolicy())
	logger.Info("listening", zap.String("addr", cfg.ListenAddr))
	return http.ListenAndServe(cfg.ListenAddr, srv.Router())
}

// session holds the REPL's live run and its collaborators.
type session struct {
	cfg     config.Config
	logger  *zap.Logger
	store   *savestore.Store
	catalog *game.Catalog
	policy  game.Policy
	parser  *parser.Parser

	runID string
	g     *game.GameState
}

func runREPL(cfg config.Config, logger *zap.Logger) error {
	store, err := savestore.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	catalog, err := game.NewCatalog(game.BuiltinEncounters())
	if err != nil {
		return err
	}

	s := &session{
		cfg:     cfg,
		logger:  logger,
		store:   store,
		catalog: catalog,
		policy:  game.DefaultPolicy(),
		parser:  parser.New(),
	}
	if err := s.newRun(); err != nil {
		return err
	}

	fmt.Println("trailbound - type 'help' for commands")
	s.printStatus()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		intent := s.parser.Parse(s.parseContext(), line)
		if intent.Clarify != nil {
			fmt.Println(intent.Clarify.Prompt)
			for i, opt := range intent.Clarify.Options {
				fmt.Printf("  %d) %s\n", i+1, parser.IntentToCommandString(opt))
			}
			continue
		}
		if intent.Verb == "quit" {
			fmt.Println("safe travels.")
			return nil
		}
		s.dispatch(intent)
	}
}

func (s *session) newRun() error {
	g, err := game.New(game.RunConfig{
		Seed:          s.cfg.Seed,
		GameMode:      game.ModeStandard,
		Pace:          game.Pace(s.cfg.Pace),
		Diet:          game.Diet(s.cfg.Diet),
		Persona:       game.Persona(s.cfg.Persona),
		StartingCents: s.cfg.StartingCents,
		Debug:         s.cfg.Debug,
	}, s.catalog, s.policy, s.logger)
	if err != nil {
		return err
	}
	s.g = g
	s.runID = savestore.NewRunID()
	return nil
}

func (s *session) parseContext() parser.ParseContext {
	ctx := parser.ParseContext{
		StoreItems: []string{
			"oxen", "food", "ammo", "clothes",
			"tire", "battery", "alternator", "fuel_pump", "medkit",
		},
	}
	if s.g.Current != nil {
		for _, c := range s.g.Current.Choices {
			ctx.Choices = append(ctx.Choices, c.ID)
		}
	}
	return ctx
}

func (s *session) dispatch(intent parser.Intent) {
	switch intent.Verb {
	case "help":
		fmt.Println("commands: status travel camp hunt buy store choose pace diet bribe permit refuse vote medkit journal save load runs quit")
	case "status":
		s.printStatus()
	case "travel":
		record, err := s.g.AdvanceDay()
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		s.printRecord(record)
	case "camp":
		record, err := s.g.Camp()
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		s.printRecord(record)
	case "hunt":
		record, err := s.g.Hunt()
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		s.printRecord(record)
	case "buy":
		s.buy(intent)
	case "store":
		s.printStore()
	case "choose":
		if len(intent.Args) == 0 {
			fmt.Println("choose what?")
			return
		}
		if err := s.g.ChooseEncounter(intent.Args[0]); err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println("done. the day is still yours; 'travel' to roll on.")
	case "pace":
		if len(intent.Args) == 0 {
			fmt.Println("pace steady, strenuous, or grueling?")
			return
		}
		if err := s.g.SetPace(game.Pace(intent.Args[0])); err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println("pace set to", intent.Args[0])
	case "diet":
		if len(intent.Args) == 0 {
			fmt.Println("diet generous, meager, or bare?")
			return
		}
		if err := s.g.SetDiet(game.Diet(intent.Args[0])); err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println("diet set to", intent.Args[0])
	case "bribe":
		fmt.Printf("the bribe runs $%.2f\n", float64(s.g.BribeQuoteCents())/100)
		if err := s.g.PayBribe(); err != nil {
			fmt.Println("error:", err)
			return
		}
		s.g.EndOfDay()
		fmt.Println("paid. the gate lifts.")
	case "permit":
		if err := s.g.ShowPermit(); err != nil {
			fmt.Println("error:", err)
			return
		}
		s.g.EndOfDay()
		fmt.Println("waved through.")
	case "refuse":
		if err := s.g.RefuseBribe(); err != nil {
			fmt.Println("error:", err)
			return
		}
		s.g.EndOfDay()
		fmt.Println("you turn around and take the long way.")
	case "vote":
		kind, err := s.g.ResolveBossVote()
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		s.g.EndOfDay()
		fmt.Printf("the vote is in: %s (score %d)\n", kind, s.g.Ending.Score)
	case "medkit":
		s.g.UseMedkit()
		fmt.Printf("hit points: %d, medkits left: %d\n", s.g.Stats.HitPoints, s.g.Inventory.Medkits)
	case "journal":
		for _, key := range s.g.Log {
			fmt.Println(" ", key)
		}
	case "save":
		name := "unnamed run"
		if len(intent.Args) > 0 {
			name = strings.Join(intent.Args, " ")
		}
		if err := s.store.Save(context.Background(), s.runID, name, s.g); err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println("saved as", s.runID)
	case "load":
		if len(intent.Args) == 0 {
			fmt.Println("load which run id? 'runs' lists saves.")
			return
		}
		s.load(intent.Args[0])
	case "runs":
		summaries, err := s.store.List(context.Background())
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		for _, summary := range summaries {
			fmt.Printf("  %s  day %d  %s\n", summary.ID, summary.Day, summary.Name)
		}
	default:
		fmt.Println("unknown command; try 'help'")
	}
}

func (s *session) buy(intent parser.Intent) {
	if len(intent.Args) == 0 {
		fmt.Println("buy what?")
		return
	}
	qty := 1
	if intent.Quantity != nil && intent.Quantity.N > 0 {
		qty = intent.Quantity.N
	}
	receipt, err := s.g.Purchase([]game.PurchaseLine{
		{Item: game.ItemKind(intent.Args[0]), Qty: qty},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("bought %d %s for $%.2f (balance $%.2f)\n",
		qty, intent.Args[0], float64(receipt.TotalCents)/100, s.g.BudgetDollars())
}

func (s *session) load(id string) {
	g, err := s.store.Load(context.Background(), id)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := g.Rehydrate(s.catalog, s.policy, s.logger); err != nil {
		fmt.Println("error:", err)
		return
	}
	s.g = g
	s.runID = id
	fmt.Println("loaded. day", g.Day)
	s.printStatus()
}

func (s *session) printStatus() {
	g := s.g
	fmt.Printf("day %d  %s/%s  %d miles  $%.2f\n",
		g.Day, g.Region(), g.Season(), g.DistanceMiles, g.BudgetDollars())
	fmt.Printf("supplies %d  hp %d  sanity %d  cred %d  morale %d  allies %d  panic %d\n",
		g.Stats.Supplies, g.Stats.HitPoints, g.Stats.Sanity,
		g.Stats.Credibility, g.Stats.Morale, g.Stats.Allies, g.Stats.Panic)
	fmt.Printf("vehicle %d%% (wear %d)  oxen %d  bullets %d  medkits %d\n",
		g.Vehicle.Health, g.Vehicle.Wear, g.Inventory.Oxen, g.Inventory.Bullets, g.Inventory.Medkits)
	if g.Ended() {
		fmt.Printf("RUN OVER: %s on day %d, score %d\n", g.Ending.Kind, g.Ending.Day, g.Ending.Score)
	}
}

func (s *session) printStore() {
	node := s.policy.TrailNode(s.g.Day)
	for _, item := range []game.ItemKind{
		game.ItemOxen, game.ItemFood, game.ItemAmmo, game.ItemClothes,
		game.ItemTire, game.ItemBattery, game.ItemAlternator, game.ItemFuelPump, game.ItemMedkit,
	} {
		price, err := s.policy.PriceCents(item, node)
		if err != nil {
			continue
		}
		fmt.Printf("  %-11s $%.2f\n", item, float64(price)/100)
	}
}

func (s *session) printRecord(record game.DayRecord) {
	fmt.Printf("day %d  %s/%s  weather %s", record.Day, record.Region, record.Season, record.Weather)
	if record.Miles > 0 {
		fmt.Printf("  +%d miles", record.Miles)
	}
	fmt.Println()
	for _, key := range record.LogKeys {
		fmt.Println(" ", key)
	}
	if record.EncounterPending && s.g.Current != nil {
		fmt.Println(s.g.Current.Name, "-", s.g.Current.Description)
		for _, c := range s.g.Current.Choices {
			fmt.Printf("  choose %s - %s\n", c.ID, c.Label)
		}
	}
	if record.BribeWindow {
		fmt.Printf("a checkpoint guard wants $%.2f. bribe, permit, or refuse?\n", float64(s.g.BribeQuoteCents())/100)
	}
	if record.VotePending {
		fmt.Println("the trail ends here. 'vote' to face the council.")
	}
	if record.Ended {
		fmt.Printf("RUN OVER: %s, score %d\n", record.Ending, s.g.Ending.Score)
	}
}
