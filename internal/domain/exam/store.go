package exam

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"exam-article-api/pkg/errors"
)

// document 考试配置文件的顶层结构
type document struct {
	ExamTypes map[string]TypeConfig `json:"exam_types"`
}

// Store 考试类型配置存储
//
// 加载后只读，无写入者，可被多个请求并发读取。
type Store struct {
	types map[string]TypeConfig
	order []string
}

// LoadStore 从 JSON 文件加载考试配置
//
// 配置按原样 JSON 解析而不是走 viper：viper 会把 map 键统一转为小写，
// 而考试类型标识（TOEIC 等）必须保留原始大小写。
func LoadStore(path string) (*Store, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfiguration(
			fmt.Sprintf("exam config file not found: %s", path)).WithError(err)
	}

	var doc document
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, errors.NewConfiguration(
			fmt.Sprintf("exam config file malformed: %s", path)).WithError(err)
	}
	if len(doc.ExamTypes) == 0 {
		return nil, errors.NewConfiguration(
			fmt.Sprintf("exam config file defines no exam types: %s", path))
	}

	for id, cfg := range doc.ExamTypes {
		if err := checkInvariants(id, cfg); err != nil {
			return nil, err
		}
	}

	order := make([]string, 0, len(doc.ExamTypes))
	for id := range doc.ExamTypes {
		order = append(order, id)
	}
	sort.Strings(order)

	return &Store{
		types: doc.ExamTypes,
		order: order,
	}, nil
}

// checkInvariants 校验单个考试配置的内部一致性
func checkInvariants(id string, cfg TypeConfig) error {
	supported := make(map[string]struct{}, len(cfg.SupportedDifficulties))
	for _, d := range cfg.SupportedDifficulties {
		supported[d] = struct{}{}
	}

	// default_word_count 的键必须是已支持的难度档位
	for d := range cfg.DefaultWordCount {
		if _, ok := supported[d]; !ok {
			return errors.NewConfiguration(fmt.Sprintf(
				"exam %s: default_word_count key %q not in supported_difficulties", id, d))
		}
	}

	if cfg.FallbackDifficulty != "" {
		if _, ok := supported[cfg.FallbackDifficulty]; !ok {
			return errors.NewConfiguration(fmt.Sprintf(
				"exam %s: fallback_difficulty %q not in supported_difficulties", id, cfg.FallbackDifficulty))
		}
	}

	if cfg.ValidationRules.TopicMinLength <= 0 ||
		cfg.ValidationRules.TopicMaxLength < cfg.ValidationRules.TopicMinLength {
		return errors.NewConfiguration(fmt.Sprintf(
			"exam %s: invalid topic length bounds [%d, %d]",
			id, cfg.ValidationRules.TopicMinLength, cfg.ValidationRules.TopicMaxLength))
	}
	if cfg.ValidationRules.WordCountMin <= 0 ||
		cfg.ValidationRules.WordCountMax < cfg.ValidationRules.WordCountMin {
		return errors.NewConfiguration(fmt.Sprintf(
			"exam %s: invalid word count bounds [%d, %d]",
			id, cfg.ValidationRules.WordCountMin, cfg.ValidationRules.WordCountMax))
	}

	return nil
}

// Get 获取指定考试类型的配置，标识须已归一化
func (s *Store) Get(examType string) (TypeConfig, error) {
	cfg, ok := s.types[examType]
	if !ok {
		return TypeConfig{}, errors.NewUnsupportedExamType(examType, s.SupportedTypes())
	}
	return cfg, nil
}

// Has 检查考试类型是否存在
func (s *Store) Has(examType string) bool {
	_, ok := s.types[examType]
	return ok
}

// SupportedTypes 返回支持的考试类型标识（按字典序）
func (s *Store) SupportedTypes() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// NewStoreFromConfigs 直接从内存配置构建存储，供测试注入
func NewStoreFromConfigs(types map[string]TypeConfig) (*Store, error) {
	for id, cfg := range types {
		if err := checkInvariants(id, cfg); err != nil {
			return nil, err
		}
	}
	order := make([]string, 0, len(types))
	for id := range types {
		order = append(order, id)
	}
	sort.Strings(order)
	return &Store{types: types, order: order}, nil
}
