//go:build windows

package daemon

import (
	"context"
	_ "embed"
	"sync"
	"syscall"
	"unsafe"

	"fyne.io/systray"
	"go.uber.org/zap"
)

//go:embed cake.ico
var cakeIcon []byte

var (
	user32      = syscall.NewLazyDLL("user32.dll")
	messageBoxW = user32.NewProc("MessageBoxW")
)

const (
	MB_OK              = 0x00000000
	MB_ICONINFORMATION = 0x00000040
)

// TrayApp represents system tray application
type TrayApp struct {
	daemon   *Daemon
	logger   *zap.Logger
	quit     chan struct{}
	quitOnce sync.Once
}

// NewTrayApp creates a new system tray application
func NewTrayApp(daemon *Daemon, logger *zap.Logger) (*TrayApp, error) {
	return &TrayApp{
		daemon: daemon,
		logger: logger,
		quit:   make(chan struct{}),
	}, nil
}

// Run starts the system tray application (blocks until Quit)
func (t *TrayApp) Run(ctx context.Context) {
	systray.Run(func() { t.onReady(ctx) }, t.onExit)
}

func (t *TrayApp) onReady(ctx context.Context) {
	systray.SetIcon(cakeIcon)
	systray.SetTitle("AB")
	systray.SetTooltip("Address book: upcoming birthdays")

	// Add menu items
	mBirthdays := systray.AddMenuItem("Birthdays", "Show upcoming birthdays")
	systray.AddSeparator()
	mQuit := systray.AddMenuItem("Quit", "Exit the application")

	// Start daemon logic in background
	go t.daemon.runScheduledLogic(ctx)

	// Handle menu item clicks
	go func() {
		for {
			select {
			case <-mBirthdays.ClickedCh:
				t.logger.Info("Birthdays clicked from tray")
				t.showDigest()
			case <-mQuit.ClickedCh:
				t.logger.Info("Quit clicked from tray")
				t.daemon.Stop()
				systray.Quit()
				return
			case <-t.quit:
				systray.Quit()
				return
			}
		}
	}()
}

func (t *TrayApp) onExit() {
	t.logger.Info("System tray exited")
}

// Stop stops the system tray application
func (t *TrayApp) Stop() {
	t.quitOnce.Do(func() { close(t.quit) })
}

// ShowNotification updates the tooltip with the digest
func (t *TrayApp) ShowNotification(title, message string) {
	// fyne.io/systray has no balloon notifications
	systray.SetTooltip(title + "\n" + message)
	t.logger.Info("Notification", zap.String("title", title), zap.String("message", message))
}

// showDigest shows the most recent digest in a message box
func (t *TrayApp) showDigest() {
	digest, date := t.daemon.LastDigest()
	message := digestMessage(digest)
	if date != "" {
		message = "As of " + date + "\n\n" + message
	}
	showMessageBox("Upcoming birthdays", message)
}

func showMessageBox(title, message string) {
	titlePtr, _ := syscall.UTF16PtrFromString(title)
	messagePtr, _ := syscall.UTF16PtrFromString(message)
	messageBoxW.Call(
		0,
		uintptr(unsafe.Pointer(messagePtr)),
		uintptr(unsafe.Pointer(titlePtr)),
		uintptr(MB_OK|MB_ICONINFORMATION),
	)
}
