package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/cloudwego/eino/flow/agent/multiagent/host"
	"github.com/cloudwego/eino/schema"
	"github.com/joho/godotenv"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/vectorstores/chroma"

	"github.com/vanshgarg20/CEG/agents"
	"github.com/vanshgarg20/CEG/mailgen"
	allPrompts "github.com/vanshgarg20/CEG/prompts"
	"github.com/vanshgarg20/CEG/tools"
	"github.com/vanshgarg20/CEG/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	webCmd := flag.Bool("web", false, "Run the web server")
	queryCmd := flag.Bool("query", false, "Generate one email from terminal input")
	seedCmd := flag.Bool("seed", false, "Seed the Chroma portfolio store from the portfolio CSV")
	deleteCmd := flag.Bool("delete", false, "Delete the Chroma portfolio collection")
	agentCmd := flag.Bool("agent", false, "Run the multi-agent pipeline on a pasted job ad")

	flag.Parse()

	ctx := context.Background()

	switch {
	case *seedCmd:
		store, err := initVectorStore(embedModel())
		if err != nil {
			log.Fatalf("failed to initialize vector store: %v", err)
		}
		if err := utils.LoadPortfolioToVectorStore(ctx, store, portfolioPath()); err != nil {
			log.Fatalf("failed to seed portfolio store: %v", err)
		}
		log.Println("Chroma portfolio store seeded successfully.")

	case *deleteCmd:
		store, err := initVectorStore(embedModel())
		if err != nil {
			log.Fatalf("failed to initialize vector store: %v", err)
		}
		if err := store.RemoveCollection(); err != nil {
			log.Fatalf("failed to delete Chroma collection: %v", err)
		}
		log.Println("Chroma portfolio collection deleted successfully.")

	case *queryCmd:
		llm, err := newLLM()
		if err != nil {
			log.Fatalf("failed to create LLM client: %v", err)
		}
		completer := &mailgen.Completer{LLM: llm, Timeout: 60 * time.Second}

		req := readRequest(os.Stdin)
		email, err := completer.GenerateEmail(ctx, personaFromEnv(), req)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println("\nGenerated Email:\n\n" + email)

	case *agentCmd:
		if err := runAgent(ctx); err != nil {
			log.Fatal(err)
		}

	case *webCmd:
		llm, err := newLLM()
		if err != nil {
			log.Fatalf("failed to create LLM client: %v", err)
		}
		completer := &mailgen.Completer{LLM: llm, Timeout: 60 * time.Second}
		persona := personaFromEnv()

		var portfolioTool *tools.PortfolioSearchTool
		if store, err := initVectorStore(embedModel()); err != nil {
			log.Printf("portfolio store unavailable, drafting without links: %v", err)
		} else {
			portfolioTool = &tools.PortfolioSearchTool{Store: store}
		}

		a := newApp(
			completer,
			persona,
			tools.ExtractJobsTool{LLM: llm},
			tools.DraftEmailTool{LLM: llm, Persona: persona},
			portfolioTool,
			envDefault("TEMPLATES_DIR", "templates"),
		)
		startAPI(ctx, a)

	default:
		fmt.Println("Please enter command: -web | -query | -seed | -delete | -agent")
	}
}

// newLLM builds the completion model from the environment. Ollama is the
// local default; the openai provider with a base URL override covers any
// OpenAI-compatible endpoint such as Groq.
func newLLM() (llms.Model, error) {
	switch provider := envDefault("LLM_PROVIDER", "ollama"); provider {
	case "ollama":
		return ollama.New(ollama.WithModel(envDefault("OLLAMA_MODEL", "llama3.1")))
	case "openai":
		key := os.Getenv("OPENAI_API_KEY")
		if key == "" {
			key = os.Getenv("GROQ_API_KEY")
		}
		if key == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY or GROQ_API_KEY must be set for the openai provider")
		}
		opts := []openai.Option{
			openai.WithToken(key),
			openai.WithModel(envDefault("OPENAI_MODEL", "llama-3.3-70b-versatile")),
		}
		if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
			opts = append(opts, openai.WithBaseURL(baseURL))
		}
		return openai.New(opts...)
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", provider)
	}
}

func initVectorStore(embedModel string) (*chroma.Store, error) {
	llmEmbed, err := ollama.New(ollama.WithModel(embedModel))
	if err != nil {
		return nil, fmt.Errorf("failed to create ollama embed model: %w", err)
	}

	embedder, err := embeddings.NewEmbedder(llmEmbed)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}

	store, err := chroma.New(
		chroma.WithChromaURL(envDefault("CHROMA_URL", "http://localhost:8000")),
		chroma.WithEmbedder(embedder),
		chroma.WithDistanceFunction("cosine"),
		chroma.WithNameSpace("portfolio"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open vector store: %w", err)
	}
	return &store, nil
}

func runAgent(ctx context.Context) error {
	baseURL := envDefault("OLLAMA_HOST", "http://localhost:11434")
	model := envDefault("OLLAMA_MODEL", "llama3.1")

	h, err := newHost(ctx, baseURL, model)
	if err != nil {
		return fmt.Errorf("failed to create host agent: %w", err)
	}
	extractor, err := agents.NewJobExtractor(ctx, baseURL, model)
	if err != nil {
		return fmt.Errorf("failed to create job extractor: %w", err)
	}
	writer, err := agents.NewEmailWriter(ctx, baseURL, model)
	if err != nil {
		return fmt.Errorf("failed to create email writer: %w", err)
	}

	ma, err := host.NewMultiAgent(ctx, &host.MultiAgentConfig{
		Host:        *h,
		Specialists: []*host.Specialist{extractor, writer},
	})
	if err != nil {
		return fmt.Errorf("failed to assemble multi-agent: %w", err)
	}

	fmt.Println("Paste the job ad or careers page text, then press Ctrl-D:")
	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		return err
	}

	out, err := ma.Generate(ctx, []*schema.Message{schema.UserMessage(string(input))})
	if err != nil {
		return err
	}
	fmt.Println(out.Content)
	return nil
}

// readRequest collects the recipient fields interactively for -query mode.
func readRequest(in io.Reader) mailgen.EmailRequest {
	reader := bufio.NewReader(in)
	return mailgen.EmailRequest{
		RecipientName:    promptLine(reader, "Recipient name: "),
		RecipientRole:    promptLine(reader, "Recipient role: "),
		RecipientCompany: promptLine(reader, "Recipient company: "),
		Intent:           promptLine(reader, "Intent ("+strings.Join(allPrompts.Intents(), " | ")+"): "),
		Tone:             promptLine(reader, "Tone (optional): "),
		CTA:              promptLine(reader, "Call to action (optional): "),
	}
}

func promptLine(r *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := r.ReadString('\n')
	return strings.TrimSpace(line)
}

func personaFromEnv() mailgen.Persona {
	p := mailgen.DefaultPersona()
	if v := os.Getenv("SENDER_NAME"); v != "" {
		p.Name = v
	}
	if v := os.Getenv("SENDER_TITLE"); v != "" {
		p.Title = v
	}
	if v := os.Getenv("SENDER_COMPANY"); v != "" {
		p.Company = v
	}
	return p
}

func embedModel() string {
	return envDefault("EMBED_MODEL", "nomic-embed-text:v1.5")
}

func portfolioPath() string {
	return envDefault("PORTFOLIO_FILE", "my_portfolio.csv")
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
