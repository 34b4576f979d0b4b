package yml_config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aaronwong1989/goipp/comm/logging"
)

var log = logging.GetDefaultLogger()

// YmlConfig yaml配置工厂
type YmlConfig interface {
	GetString(key string) string
	GetInt(key string) int64
	GetBool(key string) bool
	GetFloat64(key string) float64
	GetDuration(key string) time.Duration
	Get(key string) interface{}
	ConfigFileChangeListen()
}

var searchDirs = []string{".", "./config", "../config", "../../config", "../../../config"}

// CreateYamlFactory 创建yaml配置工厂，name可带可不带.yaml后缀
func CreateYamlFactory(name string) YmlConfig {
	if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
		name += ".yaml"
	}
	c := &ymlConfig{data: map[string]interface{}{}}
	for _, dir := range searchDirs {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			c.path = path
			break
		}
	}
	if c.path == "" {
		log.Warnf("[Config   ] %s not found in %v, using empty config", name, searchDirs)
		return c
	}
	if err := c.load(); err != nil {
		log.Errorf("[Config   ] load %s error: %v", c.path, err)
	}
	return c
}

type ymlConfig struct {
	path    string
	mu      sync.RWMutex
	data    map[string]interface{}
	modTime time.Time
}

func (c *ymlConfig) load() error {
	bts, err := os.ReadFile(c.path)
	if err != nil {
		return err
	}
	data := map[string]interface{}{}
	if err = yaml.Unmarshal(bts, &data); err != nil {
		return err
	}
	st, _ := os.Stat(c.path)
	c.mu.Lock()
	c.data = data
	if st != nil {
		c.modTime = st.ModTime()
	}
	c.mu.Unlock()
	return nil
}

// ConfigFileChangeListen 监听配置文件变更，变更后重新加载
func (c *ymlConfig) ConfigFileChangeListen() {
	if c.path == "" {
		return
	}
	go func() {
		ticker := time.NewTicker(5 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			st, err := os.Stat(c.path)
			if err != nil {
				continue
			}
			c.mu.RLock()
			changed := st.ModTime().After(c.modTime)
			c.mu.RUnlock()
			if changed {
				log.Infof("[Config   ] %s changed, reloading", c.path)
				_ = c.load()
			}
		}
	}()
}

func (c *ymlConfig) Get(key string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var cur interface{} = c.data
	for _, part := range strings.Split(key, ".") {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil
		}
		cur, ok = m[part]
		if !ok {
			return nil
		}
	}
	return cur
}

func (c *ymlConfig) GetString(key string) string {
	if v, ok := c.Get(key).(string); ok {
		return v
	}
	return ""
}

func (c *ymlConfig) GetInt(key string) int64 {
	switch v := c.Get(key).(type) {
	case int:
		return int64(v)
	case int64:
		return v
	case float64:
		return int64(v)
	}
	return 0
}

func (c *ymlConfig) GetBool(key string) bool {
	if v, ok := c.Get(key).(bool); ok {
		return v
	}
	return false
}

func (c *ymlConfig) GetFloat64(key string) float64 {
	switch v := c.Get(key).(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func (c *ymlConfig) GetDuration(key string) time.Duration {
	switch v := c.Get(key).(type) {
	case string:
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	case int:
		return time.Duration(v) * time.Second
	}
	return 0
}
