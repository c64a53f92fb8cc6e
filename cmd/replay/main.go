// Command replay folds a JSON-lines event log through the deterministic
// game core, persisting every resulting snapshot, and prints the final
// scoreboard and settlement. It stands in for the substrate integration:
// the core itself performs no I/O.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/quizlabs/triviacore/internal/common/clock"
	"github.com/quizlabs/triviacore/internal/common/logger"
	"github.com/quizlabs/triviacore/internal/common/uuid"
	"github.com/quizlabs/triviacore/internal/models"
	matchRepo "github.com/quizlabs/triviacore/internal/repositories/match"
	poolRepo "github.com/quizlabs/triviacore/internal/repositories/questionpool"
	matchService "github.com/quizlabs/triviacore/internal/services/match"
)

func main() {
	// Load .env if present; real deployments set the environment directly
	_ = godotenv.Load()

	log := logger.New()

	var (
		poolFile   = flag.String("pool", "", "path to a JSON file with the question pool")
		eventsFile = flag.String("events", "", "path to a JSON-lines file with the event log")
		seed       = flag.Uint64("seed", 1, "question selection seed distributed by the substrate")
		minPlayers = flag.Int("min-players", 2, "minimum players required to start")
		rounds     = flag.Int("rounds", 3, "number of rounds per match")
	)
	flag.Parse()

	if *poolFile == "" || *eventsFile == "" {
		log.Fatal("both -pool and -events are required")
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	matches, err := matchRepo.NewRedis(&matchRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create match repository: %v", err)
	}

	pools, err := poolRepo.NewRedis(&poolRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create question pool repository: %v", err)
	}

	// Initialize match service
	svc, err := matchService.New(&matchService.Config{
		MinPlayers:    *minPlayers,
		Rounds:        *rounds,
		PayoutWeights: []uint64{50, 30, 20},
		MatchRepo:     matches,
		PoolRepo:      pools,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
		Logger:        log,
	})
	if err != nil {
		log.Fatalf("Failed to create match service: %v", err)
	}

	run(log, svc, pools, *poolFile, *eventsFile, *seed)
}

func run(log *logrus.Logger, svc matchService.Service, pools poolRepo.Repository, poolFile, eventsFile string, seed uint64) {
	ctx := context.Background()

	questions, err := loadPool(poolFile)
	if err != nil {
		log.Fatalf("Failed to load question pool: %v", err)
	}

	poolID := uuid.New().NewUUID()
	err = pools.SavePool(ctx, &poolRepo.SavePoolInput{
		PoolID:    poolID,
		Questions: questions,
	})
	if err != nil {
		log.Fatalf("Failed to save question pool: %v", err)
	}

	created, err := svc.CreateMatch(ctx, &matchService.CreateMatchInput{
		PoolID: poolID,
		Seed:   seed,
	})
	if err != nil {
		log.Fatalf("Failed to create match: %v", err)
	}

	matchID := created.Match.ID
	log.WithField("match_id", matchID).Info("replaying event log")

	file, err := os.Open(eventsFile)
	if err != nil {
		log.Fatalf("Failed to open event log: %v", err)
	}
	defer file.Close()

	var settlement []*models.SettlementEntry
	lineNo := 0

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var event models.Event
		if err := json.Unmarshal(line, &event); err != nil {
			log.Fatalf("Failed to parse event on line %d: %v", lineNo, err)
		}

		out, err := svc.ProcessEvent(ctx, &matchService.ProcessEventInput{
			MatchID: matchID,
			Event:   &event,
		})
		if err != nil {
			// Rejections are part of normal operation; the substrate
			// decides whether to redeliver a corrected event.
			log.WithFields(logrus.Fields{
				"line":       lineNo,
				"event_type": event.Type,
				"tick":       event.Tick,
			}).WithError(err).Warn("event rejected")
			continue
		}

		if out.Settlement != nil {
			settlement = out.Settlement
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("Failed to read event log: %v", err)
	}

	final, err := svc.GetMatch(ctx, &matchService.GetMatchInput{MatchID: matchID})
	if err != nil {
		log.Fatalf("Failed to load final match state: %v", err)
	}

	log.WithFields(logrus.Fields{
		"phase":          final.Match.State.Phase,
		"tick":           final.Match.State.Tick,
		"rounds_played":  len(final.Match.State.Summaries),
		"events_applied": final.Match.EventsApplied,
	}).Info("replay complete")

	if settlement == nil {
		log.Info("match did not finish; no settlement produced")
		return
	}

	for _, entry := range settlement {
		log.WithFields(logrus.Fields{
			"rank":          entry.Rank,
			"player_id":     entry.PlayerID,
			"score":         entry.Score,
			"payout_weight": entry.PayoutWeight,
		}).Info("settlement entry")
	}
}

// loadPool reads a question pool from a JSON file
func loadPool(path string) ([]*models.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var questions []*models.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, err
	}

	return questions, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
