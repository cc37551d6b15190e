package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) writeConfig(body string) string {
	path := filepath.Join(s.dir, "prizedraw.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(body), 0o644))
	return path
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := Load("")
	s.Require().NoError(err)

	s.Equal("8080", cfg.Server.Port)
	s.Equal(SourceFile, cfg.Prizes.Source)
	s.Equal("prizes-config.json", cfg.Prizes.Path)
	s.Equal(15, cfg.Draw.TickCount)
	s.Equal(80*time.Millisecond, cfg.Draw.TickInterval)
	s.Equal(200*time.Millisecond, cfg.Draw.RevealDelay)
	s.Equal(300*time.Millisecond, cfg.Draw.CelebrationDelay)
	s.Equal(800*time.Millisecond, cfg.Draw.SettleDelay)
	s.Equal(2*time.Second, cfg.Draw.NoticeDuration)
	s.Equal("15:04:05", cfg.Draw.TimeLayout)
	s.False(cfg.Discord.Enabled())
}

func (s *ConfigTestSuite) TestFileAndEnv() {
	path := s.writeConfig(`
server:
  port: "9090"
prizes:
  source: redis
  redis_key: office:prizes
  format: yaml
draw:
  tick_count: 10
  tick_interval: 100ms
`)
	s.T().Setenv("PRIZEDRAW_DRAW_TICK_COUNT", "12")
	s.T().Setenv("PRIZEDRAW_DISCORD_TOKEN", "secret")
	s.T().Setenv("PRIZEDRAW_PRIZES_SEED", "42")

	cfg, err := Load(path)
	s.Require().NoError(err)

	s.Equal("9090", cfg.Server.Port)
	s.Equal(SourceRedis, cfg.Prizes.Source)
	s.Equal("office:prizes", cfg.Prizes.RedisKey)
	s.Equal("yaml", cfg.Prizes.Format)
	s.Equal(12, cfg.Draw.TickCount)
	s.Equal(100*time.Millisecond, cfg.Draw.TickInterval)
	s.Equal(uint64(42), cfg.Prizes.Seed)
	s.True(cfg.Discord.Enabled())
}

func (s *ConfigTestSuite) TestInvalidSource() {
	path := s.writeConfig("prizes:\n  source: carrier-pigeon\n")

	_, err := Load(path)
	s.Error(err)
}

func (s *ConfigTestSuite) TestHTTPSourceNeedsURL() {
	path := s.writeConfig("prizes:\n  source: http\n")

	_, err := Load(path)
	s.Error(err)
}

func (s *ConfigTestSuite) TestMissingExplicitFile() {
	_, err := Load(filepath.Join(s.dir, "missing.yaml"))
	s.Error(err)
}

func (s *ConfigTestSuite) TestZeroTimingsRejected() {
	for _, body := range []string{
		"draw:\n  notice_fade: 0s\n",
		"draw:\n  particles: 0\n",
		"draw:\n  tick_count: 0\n",
	} {
		_, err := Load(s.writeConfig(body))
		s.Error(err, body)
	}
}

func (s *ConfigTestSuite) TestDefaultFadeAndParticles() {
	cfg, err := Load("")
	s.Require().NoError(err)

	s.Equal(300*time.Millisecond, cfg.Draw.NoticeFade)
	s.Equal(100, cfg.Draw.Particles)
}

func (s *ConfigTestSuite) TestWinTone() {
	cfg, err := Load("")
	s.Require().NoError(err)
	s.Equal("celebration", cfg.Draw.WinTone)

	cfg, err = Load(s.writeConfig("draw:\n  win_tone: funny\n"))
	s.Require().NoError(err)
	s.Equal("funny", cfg.Draw.WinTone)

	_, err = Load(s.writeConfig("draw:\n  win_tone: sarcastic\n"))
	s.Error(err)
}
