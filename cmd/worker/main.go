package main

import (
	"log"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"

	"declatogo-backend/internal/adapter/mailer"
	"declatogo-backend/internal/adapter/worker"
	"declatogo-backend/internal/config"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.ValidateMailer(); err != nil {
		log.Fatalf("config: %v", err)
	}

	mail := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: cfg.RedisAddr, DB: cfg.RedisDB},
		asynq.Config{Concurrency: cfg.WorkerConcurrency},
	)

	mux := asynq.NewServeMux()
	wh := worker.NewWorkerHandler(mux, mail)
	wh.RegisterHandlers()

	log.Printf("email worker consuming from %s", cfg.RedisAddr)
	if err := srv.Run(mux); err != nil {
		log.Fatalf("worker: %v", err)
	}
}
