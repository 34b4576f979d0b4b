package agent

import (
	"github.com/aaronwong1989/goipp/comm/logging"
	"github.com/aaronwong1989/goipp/comm/yml_config"
)

var log = logging.GetDefaultLogger()

// Conf 配置项: port, multicore, max-pool-size, data-center-id, worker-id
var Conf yml_config.YmlConfig

func LoadConfig() {
	if Conf == nil {
		Conf = yml_config.CreateYamlFactory("ipp")
		Conf.ConfigFileChangeListen()
	}
}
