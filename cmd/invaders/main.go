// main.go - cabinet shell binary wiring the invaders core to real
// video, audio and input backends.

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/voidwire/invaders-core"
)

func banner() {
	fmt.Println("Space Invaders (Taito 8080) — cabinet core")
	fmt.Println("h/g/f/e ROM banks, ebiten video+input, oto audio")
}

func main() {
	banner()

	romDir := flag.String("rom-dir", ".", "directory containing invaders.h/.g/.f/.e")
	lives := flag.Int("lives", 1, "DIP lives code: 0=3 1=4 2=5 3=6")
	bonus1000 := flag.Bool("bonus-1000", true, "DIP: bonus life at 1000 points")
	headless := flag.Bool("headless", false, "run without opening a window (for scripted/CI use)")
	scriptPath := flag.String("script", "", "Lua script to drive the console instead of interactive play")
	copyHighScore := flag.Bool("copy-highscore", false, "copy the current high score to the clipboard and exit")
	flag.Parse()

	mem := invaders.NewMemory()
	banks, err := loadBankFiles(*romDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invaders: %v\n", err)
		os.Exit(1)
	}
	if err := invaders.LoadROM(mem, banks); err != nil {
		fmt.Fprintf(os.Stderr, "invaders: %v\n", err)
		os.Exit(1)
	}

	io := invaders.NewMachineIO()
	io.DipLives(byte(*lives))
	io.DipBonusLifeAt1000(*bonus1000)

	cpu := invaders.NewCPU(mem, io)

	if *copyHighScore {
		if err := copyHighScoreToClipboard(mem); err != nil {
			fmt.Fprintf(os.Stderr, "invaders: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var detector soundPlayer
	if *headless {
		detector = newHeadlessAudio()
	} else {
		var err error
		detector, err = newOtoAudio()
		if err != nil {
			fmt.Fprintf(os.Stderr, "invaders: audio init failed, falling back to headless: %v\n", err)
			detector = newHeadlessAudio()
		}
	}
	defer detector.Close()

	sched := invaders.NewScheduler(cpu, mem, io, func(vram []byte, events []invaders.SoundEvent) {
		frame := invaders.DecodeFresh(vram)
		deliverFrame(frame)
		detector.Play(events)
	})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		sched.Shutdown()
	}()

	if *scriptPath != "" {
		if err := runScript(*scriptPath, cpu, mem, io, sched); err != nil {
			fmt.Fprintf(os.Stderr, "invaders: script error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *headless {
		runHeadless(cpu, io, sched)
		return
	}

	if err := runEbitenFrontend(cpu, io, sched); err != nil {
		fmt.Fprintf(os.Stderr, "invaders: %v\n", err)
		os.Exit(1)
	}
}

func loadBankFiles(dir string) ([4][]byte, error) {
	var banks [4][]byte
	names := [4]string{"invaders.h", "invaders.g", "invaders.f", "invaders.e"}
	for i, name := range names {
		b, err := os.ReadFile(dir + string(os.PathSeparator) + name)
		if err != nil {
			return banks, fmt.Errorf("reading %s: %w", name, err)
		}
		banks[i] = b
	}
	return banks, nil
}
