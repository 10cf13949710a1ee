// gardentui 在终端中运行田地任务追踪器
//
// 用法:
//
//	go run ./cmd/gardentui [-config garden.yaml] [-log gardentui.log]
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/decker502/gardentodo/pkg/config"
	"github.com/decker502/gardentodo/pkg/tui"
)

var (
	configPath = flag.String("config", "", "田地配置文件（.yaml/.yml/.toml），为空则使用默认配置")
	logPath    = flag.String("log", "", "日志文件路径，为空则丢弃日志")
)

func main() {
	flag.Parse()

	// 终端被界面占用，日志只能写到文件
	// 诊断信息在界面运行期间先缓存，退出后写到标准错误
	var diag bytes.Buffer
	var diagOut io.Writer = &diag
	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "gardentui")
		if err != nil {
			fmt.Fprintf(os.Stderr, "无法打开日志文件: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		diagOut = io.MultiWriter(&diag, f)
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.LoadGardenConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(tui.NewWithDiagnostics(cfg, diagOut), tea.WithAltScreen())
	_, err = p.Run()
	os.Stderr.Write(diag.Bytes())
	if err != nil {
		fmt.Fprintf(os.Stderr, "运行失败: %v\n", err)
		os.Exit(1)
	}
}
