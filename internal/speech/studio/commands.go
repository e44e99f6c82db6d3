package studio

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"voicerelay/internal/cli/scheme/colours"
	"voicerelay/internal/domain/language"
	"voicerelay/internal/domain/phrase"
	"voicerelay/internal/speech"
	"voicerelay/internal/speech/relay"
	"voicerelay/internal/speech/tts"
)

// AddCommands registers the studio commands on root.
func (s *Studio) AddCommands(rootCmd *cobra.Command) {
	relayCmd := &cobra.Command{
		Use:   "relay [phrase-id]",
		Short: "🌏 Play a phrase across all languages",
		Long:  "Play one phrase in each language, one after another. Type 's' and Enter to stop.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  s.Relay,
	}
	relayCmd.Flags().StringP("text", "t", "", "Your own phrase, translated on the fly")
	relayCmd.Flags().StringP("source", "s", "", "Language code your phrase is written in")
	relayCmd.Flags().StringSliceP("languages", "l", nil, "Language codes to play, in order (default: all)")
	relayCmd.Flags().StringP("voice", "v", "", "Voice to use. See 'voices' for options")
	relayCmd.Flags().IntP("repeat", "r", 1, "Play the relay this many times")
	relayCmd.Flags().BoolP("mute", "m", false, "Decode and time the audio without a sound device")

	speakCmd := &cobra.Command{
		Use:   "speak [scene-id]",
		Short: "🎤 Play a scene in one language",
		Long:  "Play a scripted scene, or your own words, in the chosen language and voice",
		Args:  cobra.MaximumNArgs(1),
		RunE:  s.Speak,
	}
	speakCmd.Flags().StringP("language", "l", "", "Language code (default: the scene's first language)")
	speakCmd.Flags().StringP("voice", "v", "", "Voice to use. See 'voices' for options")
	speakCmd.Flags().StringP("text", "t", "", "Your own words instead of the scene text")
	speakCmd.Flags().StringP("source", "s", "", "Language code your words are written in")
	speakCmd.Flags().BoolP("mute", "m", false, "Decode and time the audio without a sound device")

	languagesCmd := &cobra.Command{
		Use:   "languages",
		Short: "🗣️ List supported languages",
		Run:   s.ListLanguages,
	}
	voicesCmd := &cobra.Command{
		Use:   "voices",
		Short: "🎧 List available voices",
		Run:   s.ListVoices,
	}
	scenesCmd := &cobra.Command{
		Use:   "scenes",
		Short: "🎬 List scripted scenes",
		Run:   s.ListScenes,
	}
	phrasesCmd := &cobra.Command{
		Use:   "phrases",
		Short: "📋 List relay phrases",
		Run:   s.ListPhrases,
	}

	rootCmd.AddCommand(relayCmd, speakCmd, languagesCmd, voicesCmd, scenesCmd, phrasesCmd)
}

func (s *Studio) Relay(cmd *cobra.Command, args []string) error {
	text, _ := cmd.Flags().GetString("text")
	source, _ := cmd.Flags().GetString("source")
	codes, _ := cmd.Flags().GetStringSlice("languages")
	voice, _ := cmd.Flags().GetString("voice")
	repeat, _ := cmd.Flags().GetInt("repeat")
	s.applyMute(cmd)

	ph, err := s.relayPhrase(args, text, source)
	if err != nil {
		return err
	}

	if len(codes) == 0 {
		codes = s.cfg.Relay.Languages
	}
	langs, err := language.Select(codes)
	if err != nil {
		return err
	}

	speaker := s.speaker(voice)
	o := relay.NewOrchestrator(relay.Config{
		Speaker:     speaker,
		Pace:        s.cfg.TTS.Pace,
		Temperature: s.cfg.TTS.Temperature,
		Pause:       s.cfg.Relay.Pause,
		OnLanguage:  s.showLanguage(ph),
		OnVisit:     s.showVisit,
	}, s.synth, s.translator, s.player, s.log)
	s.setRelay(o)
	defer s.setRelay(nil)

	fmt.Println()
	colours.Title.Printf("🌏 %s\n", ph.Label)
	colours.Muted.Printf("   %d languages · voice %s · type 's' and Enter to stop\n", len(langs), speaker)

	for i := 0; i < max(repeat, 1); i++ {
		var report *relay.Report
		s.runInteractive(func() {
			report = o.Run(cmd.Context(), ph, langs)
		}, o.Stop)

		if report.Cancelled {
			colours.Warning.Println("\n⏹️  Relay stopped")
			break
		}
		played := len(report.Languages(relay.StatusPlayed))
		colours.Success.Printf("\n✨ Relay finished: %d of %d languages played ✨\n", played, len(langs))
	}

	s.logCacheStats()
	return nil
}

func (s *Studio) relayPhrase(args []string, text, source string) (phrase.Phrase, error) {
	if strings.TrimSpace(text) != "" {
		if source != "" {
			if _, ok := language.Lookup(source); !ok {
				return phrase.Phrase{}, fmt.Errorf("unknown language code: %s", source)
			}
		}
		return phrase.NewCustom(text, source), nil
	}

	if len(args) == 0 {
		if len(s.catalog.Phrases) == 0 {
			return phrase.Phrase{}, fmt.Errorf("no relay phrases available")
		}
		return s.catalog.Phrases[0], nil
	}

	ph, ok := s.catalog.Phrase(args[0])
	if !ok {
		return phrase.Phrase{}, fmt.Errorf("phrase with ID '%s' not found", args[0])
	}
	return ph, nil
}

func (s *Studio) speaker(voice string) string {
	if voice == "" {
		return s.cfg.TTS.Speaker
	}
	if _, ok := language.LookupVoice(voice); !ok {
		s.log.WithField("voice", voice).Warn("Voice is not in the known list, passing it through")
	}
	return voice
}

func (s *Studio) showLanguage(ph phrase.Phrase) func(int, language.Language) {
	return func(i int, lang language.Language) {
		accent := colours.Language(lang.Code)
		fmt.Println()
		accent.Printf("  %2d. %s ", i+1, strings.ToUpper(lang.Name))
		colours.Native.Println(lang.NativeScript)
		if text, ok := ph.TextFor(lang.Code); ok && !ph.IsCustom() {
			fmt.Printf("      %s\n", text)
		}
	}
}

func (s *Studio) showVisit(v relay.Visit) {
	switch v.Status {
	case relay.StatusPlayed:
		if v.Translated || v.Degraded {
			fmt.Printf("      %s\n", v.Text)
		}
		if v.Degraded {
			colours.Warning.Println("      ⚠️  Translation unavailable, spoke the original text")
		}
		if v.Err != nil {
			colours.Warning.Println("      ⚠️  Could not play this one")
		} else {
			colours.Success.Println("      🔊 played")
		}
	case relay.StatusSkipped:
		colours.Muted.Println("      (no text for this language)")
	case relay.StatusFailed:
		colours.Error.Printf("      ❌ %v\n", v.Err)
		if speech.IsUpstream(v.Err) {
			colours.Muted.Println("      Check your API key and try again.")
		}
	}
}

func (s *Studio) Speak(cmd *cobra.Command, args []string) error {
	code, _ := cmd.Flags().GetString("language")
	voice, _ := cmd.Flags().GetString("voice")
	text, _ := cmd.Flags().GetString("text")
	source, _ := cmd.Flags().GetString("source")
	s.applyMute(cmd)

	scene, err := s.scene(args)
	if err != nil {
		return err
	}

	if code == "" {
		code = scene.DefaultLanguage()
	}
	lang, ok := language.Lookup(code)
	if !ok {
		return fmt.Errorf("unknown language code: %s", code)
	}

	ph := scene.Phrase()
	if strings.TrimSpace(text) != "" {
		ph = phrase.NewCustom(text, source)
		ph.Pace = scene.Pace
		ph.Temperature = scene.Temperature
	}

	speaker := s.speaker(voice)
	s.showScene(scene, lang, ph)

	stage := relay.NewStage(s.synth, s.translator, s.player, s.log, s.cfg.TTS.Pace, s.cfg.TTS.Temperature)

	var playErr error
	s.runInteractive(func() {
		playErr = stage.Play(cmd.Context(), ph, lang, speaker)
	}, func() { _ = stage.Stop() })

	if playErr != nil {
		colours.Error.Println("❌ Failed to generate speech. Check your API key and try again.")
		return playErr
	}

	colours.Success.Printf("✅ Played in %s with %s\n", lang.Name, speaker)
	s.logCacheStats()
	return nil
}

func (s *Studio) scene(args []string) (phrase.Scene, error) {
	if len(args) == 0 {
		if len(s.catalog.Scenes) == 0 {
			return phrase.Scene{}, fmt.Errorf("no scenes available")
		}
		return s.catalog.Scenes[0], nil
	}
	scene, ok := s.catalog.Scene(args[0])
	if !ok {
		return phrase.Scene{}, fmt.Errorf("scene with ID '%s' not found", args[0])
	}
	return scene, nil
}

func (s *Studio) showScene(scene phrase.Scene, lang language.Language, ph phrase.Phrase) {
	fmt.Println()
	colours.Title.Printf("%s %s\n", scene.Emoji, scene.Title)
	colours.Muted.Printf("   %s\n", scene.Subtitle)
	fmt.Println()

	colours.Language(lang.Code).Printf("🗣️  %s ", lang.Name)
	colours.Native.Println(lang.NativeScript)

	if ph.IsCustom() {
		fmt.Printf("💬 %s\n", ph.Custom)
		return
	}
	if text, ok := scene.Text(lang.Code); ok {
		fmt.Printf("💬 %s\n", text.Text)
		if text.Transliteration != "" {
			colours.Muted.Printf("   %s\n", text.Transliteration)
		}
		if text.EnglishMeaning != "" && lang.Code != "en-IN" {
			colours.Info.Printf("   %s\n", text.EnglishMeaning)
		}
	}
}

func (s *Studio) ListLanguages(cmd *cobra.Command, args []string) {
	fmt.Println()
	colours.Title.Println("🗣️ Languages (relay order) 🗣️")
	fmt.Println()
	for i, lang := range language.All() {
		fmt.Printf("  %2d. ", i+1)
		colours.Language(lang.Code).Printf("%-10s", lang.Name)
		colours.Native.Printf(" %s", lang.NativeScript)
		colours.Muted.Printf("  %s\n", lang.Code)
	}
}

func (s *Studio) ListVoices(cmd *cobra.Command, args []string) {
	fmt.Println()
	colours.Title.Println("🎧 Voices 🎧")
	fmt.Println()
	for _, v := range language.Voices() {
		marker := " "
		if v.ID == s.cfg.TTS.Speaker {
			marker = "*"
		}
		fmt.Printf("  %s %-8s", marker, v.Label)
		colours.Muted.Printf(" ID: %s\n", v.ID)
	}

	fmt.Println()
	colours.Info.Println("🔌 Engines available here:")
	for _, e := range tts.AvailableEngines() {
		marker := " "
		if e.String() == s.cfg.TTS.Engine {
			marker = "*"
		}
		fmt.Printf("  %s %s\n", marker, e)
	}
}

func (s *Studio) ListScenes(cmd *cobra.Command, args []string) {
	fmt.Println()
	colours.Title.Println("🎬 Scenes 🎬")
	fmt.Println()
	for _, scene := range s.catalog.Scenes {
		codes := make([]string, 0, len(scene.Texts))
		for _, t := range scene.Texts {
			codes = append(codes, t.LanguageCode)
		}
		fmt.Printf("  %s ", scene.Emoji)
		colours.Title.Printf("%s", scene.Title)
		fmt.Printf(" - %s\n", scene.Subtitle)
		fmt.Printf("     ⏱️ Pace: %.2f | 🌡️ Temperature: %.2f | 🗣️ %s\n",
			scene.Pace, scene.Temperature, strings.Join(codes, ", "))
		colours.Info.Printf("     ID: %s\n", scene.ID)
		fmt.Println()
	}
}

func (s *Studio) ListPhrases(cmd *cobra.Command, args []string) {
	fmt.Println()
	colours.Title.Println("📋 Relay Phrases 📋")
	fmt.Println()
	total := len(language.All())
	for _, p := range s.catalog.Phrases {
		covered := 0
		for _, lang := range language.All() {
			if _, ok := p.TextFor(lang.Code); ok {
				covered++
			}
		}
		colours.Title.Printf("  %s", p.Label)
		fmt.Printf(" (%d/%d languages)\n", covered, total)
		colours.Info.Printf("     ID: %s\n", p.ID)
	}
}
