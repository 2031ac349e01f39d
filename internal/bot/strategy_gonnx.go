package bot

import (
	"fmt"
	"log"
	"sync"

	gonnx "github.com/advancedclimatesystems/gonnx"
	"gorgonia.org/tensor"

	"github.com/talmalka/worduel/api/internal/bot/neural"
	"github.com/talmalka/worduel/api/pkg/wordle"
)

// GonnxModelPath is the directory containing policy.onnx. Set at startup
// from the GONNX_MODEL_PATH env var.
var GonnxModelPath string

// GonnxStrategy uses gonnx (pure Go ONNX runtime) to run neural inference
// over the bot's feedback history. The policy model outputs per-position
// letter logits; candidates are ranked by their summed logits.
type GonnxStrategy struct {
	policy   *gonnx.Model
	fallback Strategy
	mu       sync.Mutex
}

// NewGonnxStrategy loads the policy model from dir.
func NewGonnxStrategy(dir string) (*GonnxStrategy, error) {
	if dir == "" {
		return nil, fmt.Errorf("model path not configured")
	}
	policy, err := gonnx.NewModelFromFile(dir + "/policy.onnx")
	if err != nil {
		return nil, fmt.Errorf("load policy model: %w", err)
	}
	return &GonnxStrategy{
		policy:   policy,
		fallback: &EntropyStrategy{},
	}, nil
}

func (s *GonnxStrategy) Name() string { return "neural" }

// NextGuess runs the policy network over the bot's history and picks the
// highest-scoring consistent candidate. Any inference failure falls back to
// the entropy strategy so the match can proceed.
func (s *GonnxStrategy) NextGuess(m *wordle.Match, pool []string) (string, error) {
	cands := Candidates(m, pool)
	if len(cands) == 0 {
		return "", ErrNoCandidates
	}
	if len(cands) == 1 {
		return cands[0], nil
	}

	logits := s.runPolicy(m)
	if logits == nil {
		log.Printf("bot/gonnx: policy inference failed, falling back to %s", s.fallback.Name())
		return s.fallback.NextGuess(m, pool)
	}

	best := ""
	bestScore := 0.0
	for _, w := range cands {
		score := neural.ScoreWord(logits, w, m.Width)
		if best == "" || score > bestScore || (score == bestScore && w < best) {
			best, bestScore = w, score
		}
	}
	return best, nil
}

// runPolicy encodes the bot's feedback history and runs the policy model,
// returning flat per-position letter logits.
func (s *GonnxStrategy) runPolicy(m *wordle.Match) []float32 {
	boardData := neural.EncodeHistory(m.Histories[wordle.Bot], m.Width)

	boardTensor := tensor.New(
		tensor.WithShape(1, neural.MaxRows, m.Width, neural.FeaturesPerCell),
		tensor.Of(tensor.Float32),
		tensor.WithBacking(boardData),
	)
	widthTensor := tensor.New(
		tensor.WithShape(1),
		tensor.Of(tensor.Int64),
		tensor.WithBacking([]int64{int64(m.Width)}),
	)

	inputs := gonnx.Tensors{
		"board": boardTensor,
		"width": widthTensor,
	}

	s.mu.Lock()
	outputs, err := s.policy.Run(inputs)
	s.mu.Unlock()
	if err != nil {
		log.Printf("bot/gonnx: policy run error: %v", err)
		return nil
	}

	out, ok := outputs["letter_logits"]
	if !ok {
		log.Printf("bot/gonnx: output 'letter_logits' not found")
		return nil
	}

	switch d := out.Data().(type) {
	case []float32:
		return d
	case []float64:
		f32 := make([]float32, len(d))
		for i, v := range d {
			f32[i] = float32(v)
		}
		return f32
	default:
		log.Printf("bot/gonnx: unexpected output type %T", out.Data())
		return nil
	}
}
