package state

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"errors"
	"hash/crc32"
	"os"
	"path/filepath"

	"github.com/denisbrodbeck/machineid"
	"github.com/vinser/marsrover/internal/sound"
)

// State holds user preferences that survive restarts. Plateau, robots and
// scents are not stored, every session starts clean.
type State struct {
	Mute         bool           `json:"mute"`  // Mute all sounds
	LastMaxX     int            `json:"max_x"` // Grid bounds offered by default on the setup screen
	LastMaxY     int            `json:"max_y"`
	SoundManager *sound.Manager `json:"-"`

	path string
}

const (
	DefaultMaxX = 5
	DefaultMaxY = 3
)

var encryptionKey = generateKey()

// generateKey creates a 32-byte AES key from system-specific data.
func generateKey() []byte {
	appID, err := machineid.ProtectedID("marsrover")
	if err != nil {
		appID = "default-marsrover-id" // Fallback if machine ID fails
	}
	sum := sha256.Sum256([]byte(appID))
	return sum[:]
}

// SetMute toggles the mute state and applies it to the sound manager.
func (s *State) SetMute(mute bool) {
	s.Mute = mute
	if s.SoundManager == nil {
		return
	}
	if s.Mute {
		s.SoundManager.Mute()
	} else {
		s.SoundManager.Unmute()
	}
}

// RememberGrid records the bounds of the current session and saves.
func (s *State) RememberGrid(maxX, maxY int) error {
	s.LastMaxX, s.LastMaxY = maxX, maxY
	return s.Save()
}

// Save persists the preferences to an encrypted file with an integrity check.
func (s *State) Save() error {
	path := s.path
	if path == "" {
		var err error
		if path, err = getSavePath(); err != nil {
			return err
		}
	}

	// Serialize to JSON
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}

	// Prepend CRC32 checksum
	crc := crc32.ChecksumIEEE(raw)
	data := make([]byte, 4+len(raw))
	binary.LittleEndian.PutUint32(data[:4], crc)
	copy(data[4:], raw)

	encrypted, err := encrypt(data)
	if err != nil {
		return err
	}
	return os.WriteFile(path, encrypted, 0644)
}

// New returns default preferences with sound initialized.
func New() *State {
	s := defaults()
	s.attachSound(false)
	return s
}

func defaults() *State {
	return &State{
		LastMaxX: DefaultMaxX,
		LastMaxY: DefaultMaxY,
	}
}

// Load reads the preferences from the user config directory, falling back to
// defaults when the file is missing or damaged.
func Load() *State {
	path, err := getSavePath()
	if err != nil {
		return New()
	}
	s := loadFrom(path)
	s.attachSound(s.Mute)
	return s
}

// loadFrom decrypts and verifies the file at path without touching audio.
func loadFrom(path string) *State {
	s := defaults()
	s.path = path

	encrypted, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	decrypted, err := decrypt(encrypted)
	if err != nil || len(decrypted) < 5 {
		return s
	}
	crcStored := binary.LittleEndian.Uint32(decrypted[:4])
	payload := decrypted[4:]
	if crc32.ChecksumIEEE(payload) != crcStored {
		return s
	}

	loaded := defaults()
	if err := json.Unmarshal(payload, loaded); err != nil {
		return s // Corrupted JSON
	}
	loaded.path = path
	return loaded
}

// attachSound creates the sound manager. If it fails, the session is muted,
// but the saved preference is kept for the next run.
func (s *State) attachSound(mute bool) {
	soundMgr, soundInitFailed := initializeSound()
	s.SoundManager = soundMgr
	saved := s.Mute
	s.SetMute(mute || soundInitFailed)
	if soundInitFailed {
		s.Mute = saved
	}
}

// initializeSound creates and loads a sound manager.
// It returns the manager and a boolean indicating if initialization failed (and thus should be muted).
func initializeSound() (*sound.Manager, bool) {
	soundMgr, err := sound.NewManager(sound.CommonSampleRate)
	if err != nil {
		return nil, true // Muted due to init error
	}
	if err := soundMgr.LoadSamples(); err != nil {
		soundMgr.Close()
		return nil, true // Muted due to synthesis error
	}
	return soundMgr, false
}

// ======================
// 🔐 AES Encryption
// ======================

func encrypt(plain []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plain, nil), nil
}

func decrypt(ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}
	return gcm.Open(nil, ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():], nil)
}

// getSavePath returns the path to the save file inside the user config directory.
func getSavePath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	saveDir := filepath.Join(configDir, "marsrover")
	if err := os.MkdirAll(saveDir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(saveDir, "settings.dat"), nil
}
