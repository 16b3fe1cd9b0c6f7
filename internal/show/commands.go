package show

import "github.com/spf13/cobra"

// AddEditCommands adds the edit and audio commands to rootCmd
func (g *Gala) AddEditCommands(rootCmd *cobra.Command) {
	editCmd := &cobra.Command{
		Use:   "edit ID",
		Short: "✏️ Edit a slide",
		Long:  "Change the title, subtitle, image or content lines of the slide with the given id",
		Args:  cobra.ExactArgs(1),
		Run:   g.EditSlide,
	}
	editCmd.Flags().StringP("title", "t", "", "New title")
	editCmd.Flags().StringP("subtitle", "s", "", "New subtitle")
	editCmd.Flags().StringP("image", "i", "", "Image path or URL (the hint on quiz questions)")
	editCmd.Flags().StringArrayP("line", "l", nil, "Replace content line N, as N=TEXT (repeatable)")

	// Audio parent command
	audioCmd := &cobra.Command{
		Use:   "audio",
		Short: "🎵 Closing track",
		Long:  "Show or change the track that plays on the credits slide",
		Run:   g.ShowAudio,
	}

	setCmd := &cobra.Command{
		Use:   "set PATH",
		Short: "🎶 Set the closing track",
		Long:  "Set the closing track to an mp3 or wav file. Takes effect the next time the credits are reached.",
		Args:  cobra.ExactArgs(1),
		Run:   g.SetAudio,
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "📻 Show the closing track",
		Run:   g.ShowAudio,
	}

	audioCmd.AddCommand(setCmd, showCmd)
	rootCmd.AddCommand(editCmd, audioCmd)
}
